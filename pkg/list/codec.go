package list

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ElemError records an error encoding or decoding one element of a list.
type ElemError struct {
	Index int
	Cause error
}

func (err *ElemError) Error() string {
	return fmt.Sprintf("element %d: %s", err.Index, err.Cause)
}

func (err *ElemError) Unwrap() error { return err.Cause }

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for it := l.Iterator(); it.HasElem(); it.Next() {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(it.Elem())
		if err != nil {
			return nil, &ElemError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into the list, replacing its content.
// A JSON null decodes to the empty list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	elems := make([]T, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &elems[i]); err != nil {
			return &ElemError{i, err}
		}
	}
	*l = Of(elems...)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l List[T]) MarshalYAML() (any, error) {
	return l.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence into the list, replacing its
// content. A YAML null decodes to the empty list.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	switch {
	case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null":
		*l = List[T]{}
		return nil
	case value.Kind != yaml.SequenceNode:
		return fmt.Errorf("line %d: cannot decode %s into a list", value.Line, value.ShortTag())
	}
	elems := make([]T, len(value.Content))
	for i, elemNode := range value.Content {
		if err := elemNode.Decode(&elems[i]); err != nil {
			return &ElemError{i, err}
		}
	}
	*l = Of(elems...)
	return nil
}
