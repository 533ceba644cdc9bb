package samples

import "testing"

func TestGetSample(t *testing.T) {
	s := GetSample()

	if len(s.label) > 0 {
		t.Errorf("GetSample() failed - label has non-0 length")
	}
	if s.value != 0.0 {
		t.Errorf("GetSample() failed - value is not 0.0")
	}
}

func TestSampleInit(t *testing.T) {
	s := GetSample()
	s.Init([]byte("foo"), 11.0)

	if len(s.label) == 0 || string(s.Label()) != "foo" {
		t.Errorf("Init() failed - label is incorrect")
	}
	if s.Value() != 11.0 {
		t.Errorf("Init() failed - value is not 11.0")
	}
}

func TestSampleReset(t *testing.T) {
	s := GetSample()
	s.label = []byte("foo")
	s.value = 100.0
	s.reset()
	if len(s.label) > 0 {
		t.Errorf("reset() failed - label has non-0 length")
	}
	if s.value != 0.0 {
		t.Errorf("reset() failed - value is not 0.0")
	}
}
