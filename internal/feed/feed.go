// Package feed downloads the supplier's stock archive and parses the
// workbook inside it into feed records.
package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"stocksync/internal/logger"
	"stocksync/internal/models"
)

// ErrFetch marks network-level failures, ErrParse marks a malformed archive
// or workbook. Both are fatal to the run.
var (
	ErrFetch = errors.New("feed fetch failed")
	ErrParse = errors.New("feed parse failed")
)

// Column headings of the supplier workbook.
const (
	colCode     = "Код"
	colQuantity = "Количество"
	colPrice    = "Цена"
)

type Downloader struct {
	url        string
	headerRows int
	httpClient *http.Client
	logger     *logger.Logger
}

// NewDownloader builds a downloader for the given feed URL. headerRows is
// the number of preamble rows above the column headings.
func NewDownloader(url string, headerRows int, logger *logger.Logger) *Downloader {
	return &Downloader{
		url:        url,
		headerRows: headerRows,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Fetch downloads the feed archive and returns the parsed records.
func (d *Downloader) Fetch(ctx context.Context) ([]models.FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrFetch, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}
	d.logger.Debug("feed archive downloaded: %d bytes", len(data))

	records, err := d.parseArchive(data)
	if err != nil {
		return nil, err
	}
	d.logger.Info("feed parsed: %d records", len(records))
	return records, nil
}

func (d *Downloader) parseArchive(data []byte) ([]models.FeedRecord, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: opening archive: %v", ErrParse, err)
	}

	for _, file := range archive.File {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".xlsx") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrParse, file.Name, err)
		}
		defer rc.Close()
		return d.parseWorkbook(rc)
	}
	return nil, fmt.Errorf("%w: archive contains no workbook", ErrParse)
}

func (d *Downloader) parseWorkbook(r io.Reader) ([]models.FeedRecord, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", ErrParse, err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", ErrParse, sheet, err)
	}
	if len(rows) <= d.headerRows {
		return nil, fmt.Errorf("%w: sheet %s has no header row", ErrParse, sheet)
	}

	header := rows[d.headerRows]
	codeCol, quantityCol, priceCol := -1, -1, -1
	for i, title := range header {
		switch strings.TrimSpace(title) {
		case colCode:
			codeCol = i
		case colQuantity:
			quantityCol = i
		case colPrice:
			priceCol = i
		}
	}
	if codeCol < 0 || quantityCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("%w: columns %q, %q, %q not found in header", ErrParse, colCode, colQuantity, colPrice)
	}

	var records []models.FeedRecord
	for _, row := range rows[d.headerRows+1:] {
		record := models.FeedRecord{
			Code:     numericCell(cell(row, codeCol)),
			Quantity: numericCell(cell(row, quantityCol)),
			Price:    cell(row, priceCol),
		}
		if record.Code == "" && record.Quantity == "" && record.Price == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numericCell canonicalizes cells the sheet stores as numbers, so a product
// code read back as "73668.0" compares equal to the catalog offer id
// "73668". Non-numeric values (quantity tokens like ">10") pass through.
func numericCell(s string) string {
	if s == "" {
		return ""
	}
	if n, err := decimal.NewFromString(s); err == nil {
		return n.String()
	}
	return s
}
