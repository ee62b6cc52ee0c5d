package writer

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/feed/candle"
	"github.com/sirupsen/logrus"
)

const (
	Name = "≪writer-service≫"
)

//
// Service writes closed candles to a CSV file named after the market, e.g. SOL_USDC.csv.
//
type Service struct {
	mu         *sync.Mutex
	logger     logrus.FieldLogger
	outputPath string
	outputFile *os.File
	writer     *csv.Writer
	running    bool
}

//
// New instantiates a writer that will create its file under outputDir once started.
//
func New(outputDir string, symbol string, logger logrus.FieldLogger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		mu:         &sync.Mutex{},
		logger:     logger.WithField(constants.ComponentKey, Name),
		outputPath: filepath.Join(outputDir, symbol+".csv"),
	}
}

func (o *Service) Path() string {
	return o.outputPath
}

//
// Start implements the feed.Service interface. It creates (or truncates) the output file and writes
// the header row.
//
func (o *Service) Start() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running {
		return nil, errors.New("the writer service is already running")
	}

	var err error

	o.outputFile, err = os.Create(o.outputPath)
	if err != nil {
		return nil, err
	}

	o.writer = csv.NewWriter(o.outputFile)

	if err := o.writer.Write(header()); err != nil {
		_ = o.outputFile.Close()
		return nil, err
	}

	o.running = true

	o.logger.WithField("path", o.outputPath).Info("Started.")

	chStarted := make(chan bool, 1)
	chStarted <- true

	return chStarted, nil
}

//
// Write appends a closed candle as one row. It is safe to register as a candle close handler.
//
func (o *Service) Write(interval exchange.Interval, c *candle.Candle) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.running {
		return errors.New("the writer service is not running")
	}

	row := []string{
		c.StartTime().UTC().Format(time.RFC3339),
		interval.String(),
		c.Open().String(),
		c.High().String(),
		c.Low().String(),
		c.Close().String(),
		c.Volume().String(),
		strconv.Itoa(c.Count()),
		c.Average().StringFixed(8),
	}

	if err := o.writer.Write(row); err != nil {
		return err
	}

	o.writer.Flush()

	return o.writer.Error()
}

//
// Stop implements the feed.Service interface. It flushes and closes the output file.
//
func (o *Service) Stop() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	chStopped := make(chan bool, 1)

	if !o.running {
		chStopped <- true
		return chStopped, nil
	}

	o.logger.Info("Stopping...")

	o.writer.Flush()

	err := o.writer.Error()
	if cerr := o.outputFile.Close(); err == nil {
		err = cerr
	}

	o.running = false
	chStopped <- true

	return chStopped, err
}
