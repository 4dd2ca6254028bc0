package supabase

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/config"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/logger"
)

func (k opKind) String() string {
	switch k {
	case opRPC:
		return "rpc"
	case opInsert:
		return "insert"
	case opDelete:
		return "delete"
	case opUpdate:
		return "update"
	default:
		return "select"
	}
}

// Client ejecuta Queries contra el backend PostgREST. Cada petición lleva la
// API key como header `apikey` y como Bearer token; las escrituras piden al
// backend las filas afectadas con `Prefer: return=representation`.
type Client struct {
	rest *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente sobre la URL base del proyecto Supabase.
func NewClient(cfg config.SupabaseConfig, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.URL + "/rest/v1").
		SetTimeout(cfg.Timeout).
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key)
	return &Client{rest: rc, log: log}
}

// Execute despacha exactamente una operación configurada y normaliza la
// respuesta. Un fallo de red se devuelve como *TransportError y un status
// no-2xx como *BackendError: el caller siempre puede distinguir "cero filas"
// de "la petición falló".
func (c *Client) Execute(ctx context.Context, q *Query) (*Result, error) {
	kind := q.resolve()
	req := c.rest.R().SetContext(ctx)

	var resp *resty.Response
	var err error
	switch kind {
	case opRPC:
		resp, err = req.SetBody(q.rpcParams).Post("/rpc/" + q.rpcName)
	case opInsert:
		resp, err = req.
			SetHeader("Prefer", "return=representation").
			SetBody(q.insertData).
			Post("/" + q.table)
	case opDelete:
		resp, err = req.
			SetHeader("Prefer", "return=representation").
			SetQueryString(q.fs.Encode()).
			Delete("/" + q.table)
	case opUpdate:
		resp, err = req.
			SetHeader("Prefer", "return=representation").
			SetQueryString(q.fs.Encode()).
			SetBody(q.updateData).
			Patch("/" + q.table)
	default:
		resp, err = req.SetQueryString(q.fs.Encode()).Get("/" + q.table)
	}

	if err != nil {
		c.log.Error().
			Str("tabla", q.table).
			Str("op", kind.String()).
			Err(err).
			Msg("fallo de transporte contra el backend")
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		c.log.Error().
			Str("tabla", q.table).
			Str("op", kind.String()).
			Int("status", resp.StatusCode()).
			Str("detalle", string(resp.Body())).
			Msg("el backend rechazó la operación")
		return nil, &BackendError{Status: resp.StatusCode(), Detail: string(resp.Body())}
	}

	c.log.Debug().
		Str("tabla", q.table).
		Str("op", kind.String()).
		Int("status", resp.StatusCode()).
		Dur("duracion", resp.Time()).
		Msg("operación ejecutada")

	return &Result{raw: resp.Body(), single: q.fs.single}, nil
}
