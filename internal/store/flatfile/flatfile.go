// Package flatfile persists each collection as a text file holding one
// comma-separated record per line.
package flatfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	paymentModel "hotel/internal/domains/payment/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrPath = "file.path"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Record is implemented by every persisted model.
type Record interface {
	Record() string
}

type Paths struct {
	Rooms    string
	Guests   string
	Bookings string
	Payments string
}

type Persister struct {
	paths Paths
	otel  otel.Otel
}

func New(config *config.Config, otel otel.Otel) *Persister {
	files := config.Store.File

	return NewWithPaths(Paths{
		Rooms:    files.Rooms,
		Guests:   files.Guests,
		Bookings: files.Bookings,
		Payments: files.Payments,
	}, otel)
}

func NewWithPaths(paths Paths, otel otel.Otel) *Persister {
	return &Persister{paths: paths, otel: otel}
}

func (p *Persister) LoadRooms(ctx context.Context) ([]roomModel.Room, error) {
	return load(ctx, p, p.paths.Rooms, roomModel.ParseRecord)
}

func (p *Persister) LoadGuests(ctx context.Context) ([]guestModel.Guest, error) {
	return load(ctx, p, p.paths.Guests, guestModel.ParseRecord)
}

func (p *Persister) LoadBookings(ctx context.Context) ([]bookingModel.Booking, error) {
	return load(ctx, p, p.paths.Bookings, bookingModel.ParseRecord)
}

func (p *Persister) LoadPayments(ctx context.Context) ([]paymentModel.Payment, error) {
	return load(ctx, p, p.paths.Payments, paymentModel.ParseRecord)
}

func (p *Persister) SaveRooms(ctx context.Context, rooms []roomModel.Room) error {
	return save(ctx, p, p.paths.Rooms, rooms)
}

func (p *Persister) SaveGuests(ctx context.Context, guests []guestModel.Guest) error {
	return save(ctx, p, p.paths.Guests, guests)
}

func (p *Persister) SaveBookings(ctx context.Context, bookings []bookingModel.Booking) error {
	return save(ctx, p, p.paths.Bookings, bookings)
}

func (p *Persister) SavePayments(ctx context.Context, payments []paymentModel.Payment) error {
	return save(ctx, p, p.paths.Payments, payments)
}

// Encode renders items one record per line.
func Encode[T Record](items []T) []byte {
	var buf bytes.Buffer

	for _, item := range items {
		buf.WriteString(item.Record())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Decode parses one record per line, skipping blank lines. Errors carry the line number.
func Decode[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var items []T

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == constant.Empty {
			continue
		}

		item, err := parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return items, nil
}

func load[T any](ctx context.Context, p *Persister, path string, parse func(string) (T, error)) (items []T, err error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".flatfile.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrPath, path)

	file, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open data file")

		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	items, err = Decode(file, parse)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to parse data file")

		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return items, nil
}

// save writes to a temporary file next to path and renames it into place, so a
// failed write never truncates the previous file.
func save[T Record](ctx context.Context, p *Persister, path string, items []T) (err error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".flatfile.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrPath, path)

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to create data directory")

		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(Encode(items)); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to replace data file")

		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
