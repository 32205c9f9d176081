/*
Package seed reads and writes historical sentence data used to build a session.

Two formats are supported. Text files hold one entry per line:

	i enjoy programming	5
	island	3

Binary files hold the same data as a msgpack map with parallel arrays:

	{"s": ["i enjoy programming", "island"], "f": [5, 3]}

The loader only parses; semantic checks (positive frequencies, allowed
characters) happen when the session is built.
*/
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrMalformedSeed is returned when a seed file cannot be parsed.
var ErrMalformedSeed = errors.New("malformed seed")

// Data is historical data in the parallel form suggest.New expects.
type Data struct {
	Sentences   []string `msgpack:"s"`
	Frequencies []int    `msgpack:"f"`
}

// Len returns the number of entries.
func (d *Data) Len() int {
	return len(d.Sentences)
}

// Add appends one entry.
func (d *Data) Add(sentence string, frequency int) {
	d.Sentences = append(d.Sentences, sentence)
	d.Frequencies = append(d.Frequencies, frequency)
}

// Load reads a seed file, picking the format from its extension.
func Load(filename string) (*Data, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file %s: %w", filename, err)
	}
	defer file.Close()

	var data *Data
	switch format {
	case FormatText:
		data, err = ReadText(file)
	case FormatBinary:
		data, err = ReadBinary(bufio.NewReader(file))
	default:
		return nil, fmt.Errorf("unsupported format %v for %s", format, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	log.Debugf("Loaded %d seed sentences from %s (%v)", data.Len(), filename, format)
	return data, nil
}

// ReadText parses sentence<TAB>frequency lines. Blank lines are skipped.
func ReadText(r io.Reader) (*Data, error) {
	data := &Data{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		idx := strings.LastIndexByte(line, '\t')
		if idx < 0 {
			return nil, fmt.Errorf("%w: line %d: missing tab separator", ErrMalformedSeed, lineNum)
		}
		freq, err := strconv.Atoi(strings.TrimSpace(line[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad frequency: %v", ErrMalformedSeed, lineNum, err)
		}
		data.Add(line[:idx], freq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed text: %w", err)
	}
	return data, nil
}

// ReadBinary decodes a msgpack seed.
func ReadBinary(r io.Reader) (*Data, error) {
	data := &Data{}
	if err := msgpack.NewDecoder(r).Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
	}
	if len(data.Sentences) != len(data.Frequencies) {
		return nil, fmt.Errorf("%w: %d sentences but %d frequencies",
			ErrMalformedSeed, len(data.Sentences), len(data.Frequencies))
	}
	return data, nil
}

// WriteBinary encodes data as msgpack.
func WriteBinary(w io.Writer, data *Data) error {
	return msgpack.NewEncoder(w).Encode(data)
}

// WriteText writes data as sentence<TAB>frequency lines.
func WriteText(w io.Writer, data *Data) error {
	bw := bufio.NewWriter(w)
	for i, sentence := range data.Sentences {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", sentence, data.Frequencies[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes data to filename in the format its extension names.
func Save(filename string, data *Data) error {
	format, _ := formatForExt(filename)
	if format == FormatUnknown {
		return fmt.Errorf("unable to detect format for file %s", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()

	if format == FormatBinary {
		return WriteBinary(file, data)
	}
	return WriteText(file, data)
}
