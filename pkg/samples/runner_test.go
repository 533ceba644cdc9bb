package samples

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestRunnerEndToEnd(t *testing.T) {
	f, err := ioutil.TempFile("", "samples")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	input := "a,1\na,3\nb,5\n# comment\n2\n"
	if _, err := f.WriteString(input); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(RunnerConfig{Workers: 2, FileName: f.Name()})
	r.Run(NewLineParser)

	sp := r.sp.(*defaultSampleProcessor)
	if got := sp.statMapping["a"].count; got != 2 {
		t.Errorf("label a count got %d want 2", got)
	}
	if got := sp.statMapping["b"].count; got != 1 {
		t.Errorf("label b count got %d want 1", got)
	}
	// Three labelled samples plus the bare one; the comment carries none.
	if got := sp.statMapping[labelAllSamples].count; got != 4 {
		t.Errorf("all-samples count got %d want 4", got)
	}
}

func TestRunnerLimit(t *testing.T) {
	f, err := ioutil.TempFile("", "samples")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString("1\n2\n3\n4\n5\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(RunnerConfig{Workers: 1, FileName: f.Name(), Limit: 3})
	r.Run(NewLineParser)

	sp := r.sp.(*defaultSampleProcessor)
	if got := sp.statMapping[labelAllSamples].count; got != 3 {
		t.Errorf("limited count got %d want 3", got)
	}
}
