// Package csvfile lê datasets de vendas em CSV com cabeçalho
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights/internal/domain"
)

const utf8BOM = "\ufeff"

var (
	// ErrEmptyFile indica um arquivo sem nem mesmo a linha de cabeçalho
	ErrEmptyFile = errors.New("csv file has no header")
	// ErrDuplicateColumn indica um cabeçalho com o mesmo nome de coluna repetido
	ErrDuplicateColumn = errors.New("duplicate column in CSV header")
)

// Opener abre datasets que não estão no disco local (ex.: http)
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

type Loader struct {
	remote   Opener
	isRemote func(path string) bool
}

type Option func(*Loader)

// WithRemote delega ao opener os caminhos aceitos por match
func WithRemote(opener Opener, match func(path string) bool) Option {
	return func(l *Loader) {
		l.remote = opener
		l.isRemote = match
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load abre o arquivo (ou URL, se configurado) e lê todas as linhas indexadas pelo cabeçalho
func (l *Loader) Load(ctx context.Context, path string) ([]domain.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := l.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	rows, err := l.Read(source)
	if err != nil {
		return nil, errors.WithMessagef(err, "csvfile: %s", path)
	}

	return rows, nil
}

func (l *Loader) open(ctx context.Context, path string) (io.ReadCloser, error) {
	if l.remote != nil && l.isRemote(path) {
		return l.remote.Open(ctx, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "csvfile: open %s", path)
	}
	return file, nil
}

// Read lê um CSV com cabeçalho. Linhas mais curtas que o cabeçalho ficam sem as colunas faltantes,
// para que a validação aponte o campo ausente.
func (l *Loader) Read(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)

		// colunas sem nome (ex.: vírgula final) não são lidas por nenhum campo
		if first, ok := seen[name]; ok && name != "" {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q at positions %d and %d", name, first+1, i+1)
		}
		seen[name] = i
		columns[i] = name
	}

	rows := make([]domain.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV record")
		}

		row := make(domain.RawRow, len(columns))
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// DatasetName deriva o nome do dataset a partir do arquivo (sem diretório e extensão).
// Para URLs considera apenas o caminho, ignorando query string.
func DatasetName(location string) string {
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		location = u.Path
	}
	base := filepath.Base(location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
