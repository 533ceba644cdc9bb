package samples

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/runstats/runstats/internal/utils"
)

const defaultReadSize = 4 << 20 // 4 MB

// RunnerConfig is the configuration of the summarize runner.
type RunnerConfig struct {
	Limit         uint64 `mapstructure:"max-samples"`
	MemProfile    string `mapstructure:"memprofile"`
	Workers       uint   `mapstructure:"workers"`
	FileName      string `mapstructure:"file"`
	BurnIn        uint64 `mapstructure:"burn-in"`
	PrintInterval uint64 `mapstructure:"print-interval"`
	HdrFile       string `mapstructure:"hdr-file"`
	SummaryFile   string `mapstructure:"summary-file"`
}

// AddToFlagSet adds command line flags needed by the RunnerConfig to the flag set.
func (c RunnerConfig) AddToFlagSet(fs *pflag.FlagSet) {
	fs.Uint64("burn-in", 0, "Number of samples to ignore before collecting statistics.")
	fs.Uint64("max-samples", 0, "Limit the number of samples to read, 0 = no limit")
	fs.Uint64("print-interval", 0, "Print summary stats to stderr after this many samples (0 to disable)")
	fs.String("memprofile", "", "Write a memory profile to this file.")
	fs.Uint("workers", 1, "Number of concurrent parse workers.")
	fs.String("file", "", "File name to read samples from (blank = stdin)")
	fs.String("hdr-file", "", "Write the HDR histogram of sample values to this file.")
	fs.String("summary-file", "", "Write a YAML totals summary to this file.")
}

// Runner reads a sample stream, fans lines out to parse workers, and feeds
// the parsed samples through the stat processor.
type Runner struct {
	RunnerConfig
	br      *bufio.Reader
	sp      sampleProcessor
	scanner *scanner
	ch      chan []byte
}

// NewRunner creates a new instance of Runner, the common functionality for
// sample summarizing programs.
func NewRunner(config RunnerConfig) *Runner {
	runner := &Runner{RunnerConfig: config}
	runner.scanner = newScanner(&runner.Limit)
	spArgs := &sampleProcessorArgs{
		limit:         &runner.Limit,
		printInterval: runner.PrintInterval,
		burnIn:        runner.BurnIn,
		hdrFile:       runner.HdrFile,
		summaryFile:   runner.SummaryFile,
	}

	runner.sp = newSampleProcessor(spArgs)
	return runner
}

// SetLimit changes the number of samples to read, with 0 being all of them
func (r *Runner) SetLimit(limit uint64) {
	r.Limit = limit
}

// GetBufferedReader returns the buffered Reader that the runner reads samples from
func (r *Runner) GetBufferedReader() *bufio.Reader {
	if r.br == nil {
		if len(r.FileName) > 0 {
			// Read from specified file
			file, err := os.Open(r.FileName)
			if err != nil {
				panic(fmt.Sprintf("cannot open file for read %s: %v", r.FileName, err))
			}
			r.br = bufio.NewReaderSize(file, defaultReadSize)
		} else {
			// Read from STDIN
			r.br = bufio.NewReaderSize(os.Stdin, defaultReadSize)
		}
	}
	return r.br
}

// Run does the bulk of the summarize execution. It launches a goroutine to
// track stats, creates workers to parse lines, reads the input, and then
// does cleanup.
func (r *Runner) Run(parserCreateFn ParserCreate) {
	if r.Workers == 0 {
		panic("must have at least one worker")
	}
	if err := utils.ValidateBurnIn(r.BurnIn, r.Limit); err != nil {
		panic(err)
	}

	linePool := &sync.Pool{
		New: func() interface{} {
			return make([]byte, 0, 1024)
		},
	}
	r.ch = make(chan []byte, r.Workers)

	// Launch the stats processor:
	go r.sp.process(r.Workers)

	// Launch parse workers
	var wg sync.WaitGroup
	for i := 0; i < int(r.Workers); i++ {
		wg.Add(1)
		go r.parserHandler(&wg, linePool, parserCreateFn(), i)
	}

	// Read in lines, closing the line channel when done:
	// Wall clock start time
	wallStart := time.Now()
	r.scanner.setReader(r.GetBufferedReader()).scan(linePool, r.ch)
	close(r.ch)

	// Block for workers to finish parsing, closing the stats channel when done:
	wg.Wait()
	r.sp.CloseAndWait()

	// Wall clock end time
	wallEnd := time.Now()
	wallTook := wallEnd.Sub(wallStart)
	_, err := fmt.Printf("wall clock time: %fsec\n", float64(wallTook.Nanoseconds())/1e9)
	if err != nil {
		log.Fatal(err)
	}

	// (Optional) create a memory profile:
	if len(r.MemProfile) > 0 {
		f, err := os.Create(r.MemProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}

func (r *Runner) parserHandler(wg *sync.WaitGroup, linePool *sync.Pool, parser Parser, workerNum int) {
	parser.Init(workerNum)
	for line := range r.ch {
		samples, err := parser.ParseLine(line)
		if err != nil {
			panic(err)
		}
		r.sp.send(samples)

		linePool.Put(line[:0])
	}
	wg.Done()
}
