package history

import "time"

// TimeLayout is the human-readable timestamp stored with each record.
const TimeLayout = "1/2/2006, 3:04:05 PM"

// Record is one scan kept in the recent-scan list.
type Record struct {
	URL    string `json:"url"`
	Result string `json:"result"`
	Time   string `json:"time"`
}

// NewRecord builds a record stamped with t in local time.
func NewRecord(url, result string, t time.Time) Record {
	return Record{
		URL:    url,
		Result: result,
		Time:   t.Local().Format(TimeLayout),
	}
}

// ScannedAt parses the record's timestamp. ok is false when the stored
// string was not written in TimeLayout.
func (r Record) ScannedAt() (time.Time, bool) {
	t, err := time.ParseInLocation(TimeLayout, r.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
