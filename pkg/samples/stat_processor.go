package samples

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/atomic"
	"gopkg.in/yaml.v2"
)

// sampleProcessor is used to collect, analyze, and print sample statistics.
type sampleProcessor interface {
	getArgs() *sampleProcessorArgs
	send(samples []*Sample)
	process(workers uint)
	CloseAndWait()
	GetTotalsMap() map[string]interface{}
}

type sampleProcessorArgs struct {
	limit         *uint64 // limit is the number of samples to analyze before stopping
	burnIn        uint64  // burnIn is the number of samples to ignore before analyzing
	printInterval uint64  // printInterval is how often to print intermediate stats (number of samples)
	hdrFile       string  // hdrFile is the filename to write the HDR histogram of sample values to
	summaryFile   string  // summaryFile is the filename to write the YAML totals summary to
}

type defaultSampleProcessor struct {
	args        *sampleProcessorArgs
	wg          sync.WaitGroup
	c           chan *Sample // c is the channel for Samples to be sent for processing
	opsCount    atomic.Uint64
	startTime   time.Time
	statMapping map[string]*statGroup
}

func newSampleProcessor(args *sampleProcessorArgs) sampleProcessor {
	if args == nil {
		panic("Sample Processor needs args")
	}
	return &defaultSampleProcessor{args: args}
}

func (sp *defaultSampleProcessor) getArgs() *sampleProcessorArgs {
	return sp.args
}

func (sp *defaultSampleProcessor) send(samples []*Sample) {
	if samples == nil {
		return
	}

	for _, s := range samples {
		sp.c <- s
	}
}

// process collects samples, aggregating them into per-label summary
// statistics. Optionally, they are printed to stderr at regular intervals.
func (sp *defaultSampleProcessor) process(workers uint) {
	if sp.c == nil {
		sp.c = make(chan *Sample, workers)
	}
	sp.wg.Add(1)
	sp.statMapping = map[string]*statGroup{
		labelAllSamples: newStatGroup(*sp.args.limit),
	}

	i := uint64(0)
	sp.startTime = time.Now()
	prevTime := sp.startTime
	prevSampleCount := uint64(0)

	for sample := range sp.c {
		sp.opsCount.Inc()
		if i < sp.args.burnIn {
			i++
			samplePool.Put(sample)
			continue
		} else if i == sp.args.burnIn && sp.args.burnIn > 0 {
			_, err := fmt.Fprintf(os.Stderr, "burn-in complete after %d samples with %d workers\n", sp.args.burnIn, workers)
			if err != nil {
				log.Fatal(err)
			}
		}
		label := string(sample.label)
		if _, ok := sp.statMapping[label]; !ok {
			sp.statMapping[label] = newStatGroup(*sp.args.limit)
		}

		sp.statMapping[label].push(sample.value)

		// Unlabelled samples already went into the all-samples group above.
		if label != labelAllSamples {
			sp.statMapping[labelAllSamples].push(sample.value)
		}
		i++

		samplePool.Put(sample)

		// print stats to stderr (if printInterval is greater than zero):
		if sp.args.printInterval > 0 && i > 0 && i%sp.args.printInterval == 0 && (i < *sp.args.limit || *sp.args.limit == 0) {
			now := time.Now()
			sinceStart := now.Sub(sp.startTime)
			took := now.Sub(prevTime)
			opsCount := sp.opsCount.Load()
			intervalSampleRate := float64(opsCount-prevSampleCount) / took.Seconds()
			overallSampleRate := float64(opsCount) / sinceStart.Seconds()
			_, err := fmt.Fprintf(os.Stderr, "After %d samples with %d workers:\nInterval sample rate: %0.2f samples/sec\tOverall sample rate: %0.2f samples/sec\n",
				i-sp.args.burnIn,
				workers,
				intervalSampleRate,
				overallSampleRate,
			)
			if err != nil {
				log.Fatal(err)
			}
			err = writeStatGroupMap(os.Stderr, sp.statMapping)
			if err != nil {
				log.Fatal(err)
			}
			_, err = fmt.Fprintf(os.Stderr, "\n")
			if err != nil {
				log.Fatal(err)
			}
			prevSampleCount = opsCount
			prevTime = now
		}
	}
	sinceStart := time.Now().Sub(sp.startTime)
	overallSampleRate := float64(sp.opsCount.Load()) / sinceStart.Seconds()
	// the final stats output goes to stdout:
	_, err := fmt.Printf("Run complete after %d samples with %d workers (Overall sample rate %0.2f samples/sec):\n", i-sp.args.burnIn, workers, overallSampleRate)
	if err != nil {
		log.Fatal(err)
	}
	err = writeStatGroupMap(os.Stdout, sp.statMapping)
	if err != nil {
		log.Fatal(err)
	}

	if len(sp.args.hdrFile) > 0 {
		_, _ = fmt.Printf("Saving High Dynamic Range (HDR) Histogram of sample values to %s\n", sp.args.hdrFile)
		var b bytes.Buffer
		bw := bufio.NewWriter(&b)
		_, err = sp.statMapping[labelAllSamples].valueHDRHistogram.PercentilesPrint(bw, 10, histogramScale)
		if err != nil {
			log.Fatal(err)
		}
		err = bw.Flush()
		if err != nil {
			log.Fatal(err)
		}
		err = ioutil.WriteFile(sp.args.hdrFile, b.Bytes(), 0644)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(sp.args.summaryFile) > 0 {
		_, _ = fmt.Printf("Saving YAML totals summary to %s\n", sp.args.summaryFile)
		out, err := yaml.Marshal(sp.GetTotalsMap())
		if err != nil {
			log.Fatal(err)
		}
		err = ioutil.WriteFile(sp.args.summaryFile, out, 0644)
		if err != nil {
			log.Fatal(err)
		}
	}

	sp.wg.Done()
}

func generateQuantileMap(hist *hdrhistogram.Histogram) (int64, map[string]float64) {
	ops := hist.TotalCount()
	q0 := 0.0
	q50 := 0.0
	q95 := 0.0
	q99 := 0.0
	q999 := 0.0
	q100 := 0.0
	if ops > 0 {
		q0 = float64(hist.ValueAtQuantile(0.0)) / histogramScale
		q50 = float64(hist.ValueAtQuantile(50.0)) / histogramScale
		q95 = float64(hist.ValueAtQuantile(95.0)) / histogramScale
		q99 = float64(hist.ValueAtQuantile(99.0)) / histogramScale
		q999 = float64(hist.ValueAtQuantile(99.90)) / histogramScale
		q100 = float64(hist.ValueAtQuantile(100.0)) / histogramScale
	}

	mp := map[string]float64{"q0": q0, "q50": q50, "q95": q95, "q99": q99, "q999": q999, "q100": q100}
	return ops, mp
}

// GetTotalsMap returns the run totals: configuration, per-label sample rates,
// and per-label quantiles.
func (sp *defaultSampleProcessor) GetTotalsMap() map[string]interface{} {
	totals := make(map[string]interface{})
	totals["limit"] = *sp.args.limit
	totals["burnIn"] = sp.args.burnIn
	sinceStart := time.Now().Sub(sp.startTime)
	// calculate overall sample rates
	sampleRates := make(map[string]interface{})
	for label, group := range sp.statMapping {
		overallSampleRate := float64(group.count) / sinceStart.Seconds()
		sampleRates[stripRegex(label)] = overallSampleRate
	}
	totals["overallSampleRates"] = sampleRates
	// calculate overall quantiles
	quantiles := make(map[string]interface{})
	for label, group := range sp.statMapping {
		_, all := generateQuantileMap(group.valueHDRHistogram)
		quantiles[stripRegex(label)] = all
	}
	totals["overallQuantiles"] = quantiles
	return totals
}

func stripRegex(in string) string {
	reg, _ := regexp.Compile("[^a-zA-Z0-9]+")
	return reg.ReplaceAllString(in, "_")
}

// CloseAndWait closes the samples channel and blocks until the processor has
// drained and reported everything on it.
func (sp *defaultSampleProcessor) CloseAndWait() {
	close(sp.c)
	sp.wg.Wait()
}
