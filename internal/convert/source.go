package convert

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// sourceCard is one card object of a JSON dump
type sourceCard struct {
	ID        string           `json:"id"`
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Color     string           `json:"color"`
	Family    string           `json:"family"`
	Cost      flexInt          `json:"cost"`
	Power     flexInt          `json:"power"`
	Attribute *sourceAttribute `json:"attribute"`
	Images    *sourceImages    `json:"images"`
}

type sourceAttribute struct {
	Name string `json:"name"`
}

type sourceImages struct {
	Large string `json:"large"`
}

// flexInt decodes a number, a numeric string or null. Anything else
// decodes as zero.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = flexInt(v)
	return nil
}
