package output

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackFormatter formats reports as MessagePack, with the keys of the JSON
// report.
type MsgpackFormatter struct{}

// Format implements Formatter.
func (*MsgpackFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(newJSONOutput(report)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
