package main

import (
	"fmt"

	"github.com/lukehollenback/bpx/constants"
	"github.com/sirupsen/logrus"
)

//
// prefixFormatter lines log entries up behind the padded name of the component that emitted them.
//
type prefixFormatter struct {
	inner logrus.Formatter
}

func (o *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	component, ok := entry.Data[constants.ComponentKey]
	if !ok {
		return o.inner.Format(entry)
	}

	//
	// Format a copy so the component is not repeated among the fields.
	//
	trimmed := entry.WithFields(logrus.Fields{})
	trimmed.Time = entry.Time
	trimmed.Level = entry.Level
	trimmed.Message = entry.Message
	delete(trimmed.Data, constants.ComponentKey)

	line, err := o.inner.Format(trimmed)
	if err != nil {
		return nil, err
	}

	return append([]byte(fmt.Sprintf(constants.LogPrefixFmt, component)), line...), nil
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&prefixFormatter{
		inner: &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05"},
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
