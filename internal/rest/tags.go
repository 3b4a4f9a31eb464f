package rest

import (
	"encoding/json"
	"errors"
	"strings"
)

// TagList accepts tags as either a JSON array of strings or a single
// comma-separated string. String input is split on commas with each element
// trimmed and empty elements dropped, preserving order; array input is
// passed through unchanged.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}

	*t = SplitTags(s)
	return nil
}

// SplitTags normalizes a comma-separated tag string into a TagList.
func SplitTags(s string) TagList {
	tags := TagList{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
