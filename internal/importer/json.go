package importer

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/pfrederiksen/library-events/internal/event"
	"github.com/pfrederiksen/library-events/internal/storage"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseJSON reads exported events from r. The input is either a bare array
// of events or an object holding the array under the libraryEvents key.
// Ids in the input are discarded.
func ParseJSON(r io.Reader) ([]event.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	var events []event.Event
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("parsing JSON: empty input")
	case data[0] == '{':
		var wrapped map[string][]event.Event
		if err := codec.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		list, ok := wrapped[storage.KeyEvents]
		if !ok {
			return nil, fmt.Errorf("parsing JSON: missing %q key", storage.KeyEvents)
		}
		events = list
	default:
		if err := codec.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	payloads := make([]event.Payload, len(events))
	for i, e := range events {
		payloads[i] = event.PayloadOf(e)
	}
	return payloads, nil
}
