package samples

import (
	"bufio"
	"io"
	"log"
	"sync"
)

// scanner is used to read raw sample lines from a Reader and distribute them
// to parse workers
type scanner struct {
	r     io.Reader
	limit *uint64
}

// newScanner returns a new scanner for a given Reader and its limit
func newScanner(limit *uint64) *scanner {
	return &scanner{limit: limit}
}

// setReader sets the source, an io.Reader, that the scanner reads from
func (ss *scanner) setReader(r io.Reader) *scanner {
	ss.r = r
	return ss
}

// scan reads input lines and places them into a channel, stopping at the
// limit (0 = unlimited) or EOF, whichever comes first
func (ss *scanner) scan(pool *sync.Pool, c chan []byte) {
	sc := bufio.NewScanner(ss.r)

	n := uint64(0)
	for sc.Scan() {
		if *ss.limit > 0 && n >= *ss.limit {
			break
		}

		line := pool.Get().([]byte)
		line = append(line[:0], sc.Bytes()...)
		c <- line
		n++
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
