package realizeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/errors"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

const (
	// siteStreamRowLimit é o teto interno de linhas lidas do stream; o
	// restante do corpo é descartado junto com a conexão
	siteStreamRowLimit = 50

	siteStreamPageSize = 10
	siteStreamMaxPage  = 5
)

// GetSiteBreakdownPage busca uma página fixa do breakdown por site. O corpo
// da resposta é interpretado incrementalmente, sem carregar o documento
// inteiro em memória, e a leitura é interrompida assim que o teto interno
// de linhas é atingido. Páginas válidas vão de 1 a 5, com 10 linhas cada.
func (c *RealizeClient) GetSiteBreakdownPage(ctx context.Context, accountID string, filters *domain.ReportFilters, page int) ([]*domain.ReportRow, error) {
	if page < 1 || page > siteStreamMaxPage {
		return nil, errors.Wrapf(realizedomain.ErrPageOutOfRange,
			"página %d fora do intervalo [1,%d]", page, siteStreamMaxPage)
	}
	if filters == nil {
		return nil, errors.New("filters é obrigatório para buscar breakdown de sites")
	}

	params := url.Values{}
	params.Add("start_date", filters.StartDate.Format(dateLayout))
	params.Add("end_date", filters.EndDate.Format(dateLayout))

	streamURL := fmt.Sprintf("%s/api/1.0/%s/reports/campaign-summary/dimensions/%s?%s",
		c.Cfg.Realize.BaseURL, accountID, domain.BreakdownSite, params.Encode())

	// O cancel derruba a conexão quando o teto de linhas é atingido antes
	// do fim do corpo
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resp, err := c.get(ctx, "fetchSiteBreakdown", streamURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rows, err := readSiteRows(resp.Body, siteStreamRowLimit, cancel)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * siteStreamPageSize
	if start >= len(rows) {
		return []*domain.ReportRow{}, nil
	}

	end := start + siteStreamPageSize
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end], nil
}

// readSiteRows percorre o corpo token a token, decodificando apenas os
// elementos do array results até o limite dado
func readSiteRows(r io.Reader, limit int, cancel context.CancelFunc) ([]*domain.ReportRow, error) {
	dec := json.NewDecoder(r)

	if err := seekResultsArray(dec); err != nil {
		return nil, err
	}

	rows := make([]*domain.ReportRow, 0, limit)
	for dec.More() {
		var payload realizedomain.ReportRowPayload
		if err := dec.Decode(&payload); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar linha do breakdown de sites")
		}

		row, ok := payload.ToDomain()
		if !ok {
			continue
		}

		rows = append(rows, row)
		if len(rows) >= limit {
			cancel()
			break
		}
	}

	return rows, nil
}

// seekResultsArray avança o decoder até a abertura do array results no
// objeto raiz, pulando qualquer campo que venha antes
func seekResultsArray(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta do breakdown de sites")
	}
	if tok != json.Delim('{') {
		return errors.New("resposta do breakdown de sites não é um objeto JSON")
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "erro ao ler resposta do breakdown de sites")
		}

		key, ok := tok.(string)
		if !ok {
			return errors.New("resposta do breakdown de sites não possui o campo results")
		}

		if key == "results" {
			tok, err := dec.Token()
			if err != nil {
				return errors.Wrap(err, "erro ao ler resposta do breakdown de sites")
			}
			if tok != json.Delim('[') {
				return errors.New("campo results do breakdown de sites não é um array")
			}
			return nil
		}

		if err := skipValue(dec); err != nil {
			return errors.Wrap(err, "erro ao ler resposta do breakdown de sites")
		}
	}
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}

	return nil
}
