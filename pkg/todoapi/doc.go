// Package todoapi is a client of the todolist HTTP API.
//
//	c, err := todoapi.NewDefaultClient("http://localhost:5000")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	todo, err := c.Create("buy milk")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = c.Move(todo.ID, 1)
package todoapi
