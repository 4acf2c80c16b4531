// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bidtree/bid"
	"github.com/bitmark-inc/bidtree/fault"
)

// Inserter - destination of loaded bids
type Inserter interface {
	Insert(bid.Bid) error
}

// Summary - result of a load
type Summary struct {
	Header   []string
	Rows     int // data rows read, excluding the header
	Inserted int
	Rejected int
	Elapsed  time.Duration
}

// LoadFile - open a CSV file and load it
func LoadFile(fileName string, columns Columns, sink Inserter, log *logger.L) (*Summary, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if nil != err {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fault.ErrNotABidFile
	}

	log.Infof("loading CSV file: %q", fileName)
	return Load(f, columns, sink, log)
}

// Load - read CSV records and insert each data row into sink
//
// on a CSV syntax error the rows already inserted remain and the
// partial summary is returned with the error
func Load(r io.Reader, columns Columns, sink Inserter, log *logger.L) (*Summary, error) {
	if err := columns.Validate(); nil != err {
		return nil, err
	}

	start := time.Now()
	summary := &Summary{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows are checked against the column layout
	reader.ReuseRecord = true

	header, err := reader.Read()
	if io.EOF == err {
		summary.Elapsed = time.Since(start)
		return summary, nil
	}
	if nil != err {
		return summary, fmt.Errorf("%w: header: %s", fault.ErrCSVRead, err)
	}
	summary.Header = append([]string(nil), header...)
	log.Debugf("header: %q", summary.Header)

	width := columns.width()
	for {
		row, err := reader.Read()
		if io.EOF == err {
			break
		}
		if nil != err {
			summary.Elapsed = time.Since(start)
			log.Errorf("read failed after %d rows: %s", summary.Rows, err)
			return summary, fmt.Errorf("%w: %s", fault.ErrCSVRead, err)
		}
		summary.Rows += 1
		line, _ := reader.FieldPos(0)

		if len(row) < width {
			log.Warnf("line: %d: %s: %d of %d", line, fault.ErrMissingColumn, len(row), width)
			summary.Rejected += 1
			continue
		}

		amount, err := bid.ParseAmount(row[columns.Amount])
		if nil != err {
			log.Warnf("line: %d: amount: %q: %s", line, row[columns.Amount], err)
			summary.Rejected += 1
			continue
		}

		record := bid.Bid{
			BidId:  row[columns.BidId],
			Title:  row[columns.Title],
			Amount: amount,
			Fund:   row[columns.Fund],
		}
		if err := sink.Insert(record); nil != err {
			log.Warnf("line: %d: bid id: %q: %s", line, record.BidId, err)
			summary.Rejected += 1
			continue
		}
		summary.Inserted += 1
	}

	summary.Elapsed = time.Since(start)
	log.Infof("rows: %d  inserted: %d  rejected: %d  elapsed: %s", summary.Rows, summary.Inserted, summary.Rejected, summary.Elapsed)
	return summary, nil
}
