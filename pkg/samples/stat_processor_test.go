package samples

import (
	"testing"
	"time"
)

func TestSampleProcessorSend(t *testing.T) {
	s := GetSample()
	s.value = 10.1
	sp := &defaultSampleProcessor{}
	sp.c = make(chan *Sample, 2)
	sp.send([]*Sample{s, s})
	r := <-sp.c
	if r.value != s.value {
		t.Errorf("sent a sample and got a different one back")
	}

	// 2nd value too
	r = <-sp.c
	if r.value != s.value {
		t.Errorf("sent a sample and got a different one back (2)")
	}

	// should not send anything
	wantLen := len(sp.c)
	sp.send(nil)
	time.Sleep(25 * time.Millisecond)
	if got := len(sp.c); got != wantLen {
		t.Errorf("empty sample array changed channel length: got %d want %d", got, wantLen)
	}
}

func TestSampleProcessorAggregates(t *testing.T) {
	limit := uint64(0)
	sp := newSampleProcessor(&sampleProcessorArgs{limit: &limit}).(*defaultSampleProcessor)
	sp.c = make(chan *Sample, 1)
	go sp.process(1)

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		sp.send([]*Sample{GetSample().Init([]byte("latency"), v)})
	}
	sp.send([]*Sample{GetSample().Init([]byte(labelAllSamples), 5)})
	sp.CloseAndWait()

	if got := sp.statMapping["latency"].count; got != 8 {
		t.Errorf("latency count got %d want 8", got)
	}
	// Labelled samples contribute to the all-samples group as well; the
	// unlabelled one must not be counted twice.
	if got := sp.statMapping[labelAllSamples].count; got != 9 {
		t.Errorf("all-samples count got %d want 9", got)
	}

	totals := sp.GetTotalsMap()
	quantiles, ok := totals["overallQuantiles"].(map[string]interface{})
	if !ok {
		t.Fatalf("overallQuantiles missing from totals map")
	}
	if _, ok := quantiles["latency"]; !ok {
		t.Errorf("expected quantiles for the latency label")
	}
}

func TestSampleProcessorBurnIn(t *testing.T) {
	limit := uint64(0)
	sp := newSampleProcessor(&sampleProcessorArgs{limit: &limit, burnIn: 3}).(*defaultSampleProcessor)
	sp.c = make(chan *Sample, 1)
	go sp.process(1)

	for i := 0; i < 10; i++ {
		sp.send([]*Sample{GetSample().Init([]byte("x"), float64(i))})
	}
	sp.CloseAndWait()

	if got := sp.statMapping["x"].count; got != 7 {
		t.Errorf("count after burn-in got %d want 7", got)
	}
}
