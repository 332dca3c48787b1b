package service

import (
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/sirupsen/logrus"
)

// Options are the parameters shared by the services.
type Options struct {
	// DefaultColor is the color given to created items.
	DefaultColor string
	// BatchSize is the number of moves processed per chunk during a reorder.
	BatchSize int
	// Policy is applied when a reorder leaves non-contiguous positions.
	Policy position.Policy
	// Logger is used to report failures.
	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.DefaultColor == "" {
		o.DefaultColor = model.DefaultColor
	}
	if o.BatchSize <= 0 {
		o.BatchSize = position.DefaultBatchSize
	}
	if o.Policy == "" {
		o.Policy = position.PolicyRepair
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		o.Logger = l
	}
	return o
}
