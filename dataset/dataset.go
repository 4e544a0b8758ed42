// Copyright 2026 cinelens Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset reads sparse rating records and item metadata from
// delimited text streams, such as the `u.data` and `u.item` files of
// MovieLens 100K.
package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// ErrMalformedLine reports a line that cannot be parsed into a record. The
// annotated error carries the offending line number.
var ErrMalformedLine = errors.New("malformed line")

// Rating is a single rating record given by a user to an item.
type Rating struct {
	UserId    int32
	ItemId    int32
	Rating    float32
	Timestamp int64
}

// ReadRatings reads rating records from a whitespace delimited stream:
//
//	<userId> \t <itemId> \t <rating> \t <timestamp>
//
// For example, the `u.data` from MovieLens 100K is:
//
//	196	242	3	881250949
//	186	302	3	891717742
//	22	377	1	878887116
func ReadRatings(r io.Reader) ([]Rating, error) {
	var ratings []Rating
	lineNumber := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		fields := strings.Fields(line)
		// Ignore empty line
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: expect 4 fields, got %d", lineNumber, len(fields))
		}
		userId, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: user id %q", lineNumber, fields[0])
		}
		itemId, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: item id %q", lineNumber, fields[1])
		}
		rating, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: rating %q", lineNumber, fields[2])
		}
		timestamp, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: timestamp %q", lineNumber, fields[3])
		}
		ratings = append(ratings, Rating{
			UserId:    int32(userId),
			ItemId:    int32(itemId),
			Rating:    float32(rating),
			Timestamp: timestamp,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	return ratings, nil
}

// LoadRatings reads rating records from a file.
func LoadRatings(path string) ([]Rating, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadRatings(file)
}

// ReadItems reads item metadata from a '|' delimited stream:
//
//	<itemId>|<title>|<auxiliary fields...>
//
// For example, the `u.item` from MovieLens 100K is:
//
//	1|Toy Story (1995)|01-Jan-1995||http://us.imdb.com/M/title-exact?Toy%20Story%20(1995)|...
//
// Auxiliary fields after the title are ignored.
func ReadItems(r io.Reader) (map[int32]string, error) {
	items := make(map[int32]string)
	lineNumber := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: expect at least 2 fields, got %d", lineNumber, len(fields))
		}
		itemId, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, errors.Annotatef(ErrMalformedLine, "line %d: item id %q", lineNumber, fields[0])
		}
		items[int32(itemId)] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	return items, nil
}

// LoadItems reads item metadata from a file.
func LoadItems(path string) (map[int32]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	return ReadItems(file)
}
