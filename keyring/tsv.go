package keyring

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MakeTSV writes the credentials to f as a TSV file with a 'service',
// 'username', 'password' header row.
func MakeTSV(f io.Writer, credentials []Credential) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write([]string{"service", "username", "password"})
	for _, c := range credentials {
		w.Write([]string{clean(c.Service), clean(c.Username), c.Password})
	}

	w.Flush()

	return w.Error()
}

// ParseTSV reads credentials from a TSV file with a header row. Rows without
// both a service and a username are skipped.
func ParseTSV(f io.Reader) ([]Credential, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	header := records[0]
	if len(header) < 3 || normalise(header[0]) != "service" || normalise(header[1]) != "username" || normalise(header[2]) != "password" {
		return nil, fmt.Errorf("missing/invalid header row - expected 'service', 'username' and 'password' columns")
	}

	credentials := []Credential{}
	for _, record := range records[1:] {
		c := Credential{}

		if len(record) > 0 {
			c.Service = clean(record[0])
		}

		if len(record) > 1 {
			c.Username = clean(record[1])
		}

		if len(record) > 2 {
			c.Password = record[2]
		}

		if c.Service == "" || c.Username == "" {
			continue
		}

		credentials = append(credentials, c)
	}

	return credentials, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
