// Package crud generates list/get/create/update/delete handlers for simple
// admin-managed tables from a column allow-list.
package crud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/middleware"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
	"github.com/rs/zerolog"
)

// Resource describes a table served by the factory.
type Resource struct {
	// Table is the table name and the route segment
	Table string
	// Fields are the columns a request body may set
	Fields []string
	// JSONFields hold array data stored as JSON text
	JSONFields []string
	// BoolFields are stored as 1/0
	BoolFields []string
	// TouchUpdatedAt sets updated_at on create as well as on update
	TouchUpdatedAt bool
}

func (r Resource) isJSON(field string) bool { return contains(r.JSONFields, field) }
func (r Resource) isBool(field string) bool { return contains(r.BoolFields, field) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Handler serves one Resource
type Handler struct {
	db  *db.DB
	res Resource
	log zerolog.Logger
}

// New creates the handlers for res
func New(database *db.DB, res Resource, log zerolog.Logger) *Handler {
	return &Handler{
		db:  database,
		res: res,
		log: log.With().Str("table", res.Table).Logger(),
	}
}

// Resource returns the served resource
func (h *Handler) Resource() Resource {
	return h.res
}

// Register mounts the five handlers at /<table> and /<table>/:id
func (h *Handler) Register(group *gin.RouterGroup) {
	base := "/" + h.res.Table
	group.GET(base, h.List)
	group.GET(base+"/:id", h.Get)
	group.POST(base, h.Create)
	group.PUT(base+"/:id", h.Update)
	group.DELETE(base+"/:id", h.Delete)
}

// List returns every row, highest id first
func (h *Handler) List(c *gin.Context) {
	rows, err := db.QueryMaps(c.Request.Context(), h.db.SQL, h.db.Builder().
		Select("*").
		From(h.res.Table).
		OrderBy("id DESC"))
	if err != nil {
		h.log.Error().Err(err).Msg("Error listing rows")
		middleware.HandleAPIError(c, err)
		return
	}
	for _, row := range rows {
		h.decodeRow(row)
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns one row
func (h *Handler) Get(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	row, err := h.load(c, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	h.decodeRow(row)
	c.JSON(http.StatusOK, row)
}

// Create inserts a row built from the allowed fields of the body.
// Fields the body leaves out are stored as NULL.
func (h *Handler) Create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	now := helpers.Now()
	values := map[string]interface{}{}
	for _, f := range h.res.Fields {
		if isTimestamp(f) {
			continue
		}
		v := body[f]
		switch {
		case h.res.isJSON(f):
			text, err := jsonfield.EncodeText(v)
			if err != nil {
				middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid value for "+f))
				return
			}
			values[f] = text
		case h.res.isBool(f):
			values[f] = boolInt(truthy(v))
		default:
			values[f] = columnValue(v)
		}
	}
	values["created_at"] = now
	if h.res.TouchUpdatedAt {
		values["updated_at"] = now
	}

	id, err := h.db.InsertReturningID(c.Request.Context(), h.db.SQL, h.db.Builder().
		Insert(h.res.Table).
		SetMap(values))
	if err != nil {
		h.log.Error().Err(err).Msg("Error creating row")
		middleware.HandleAPIError(c, fmt.Errorf("error creating %s row: %w", h.res.Table, err))
		return
	}
	c.JSON(http.StatusOK, dto.OKIDResponse{OK: true, ID: id})
}

// Update merges the allowed fields of the body over the stored row
func (h *Handler) Update(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	existing, err := h.load(c, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	values := map[string]interface{}{}
	for _, f := range h.res.Fields {
		if isTimestamp(f) {
			continue
		}
		v, supplied := body[f]
		if !supplied || v == nil {
			values[f] = existing[f]
			continue
		}
		switch {
		case h.res.isJSON(f):
			text, err := jsonfield.EncodeText(v)
			if err != nil {
				middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid value for "+f))
				return
			}
			values[f] = text
		case h.res.isBool(f):
			values[f] = boolInt(truthy(v))
		default:
			values[f] = columnValue(v)
		}
	}
	values["updated_at"] = helpers.Now()

	if _, err := db.Exec(c.Request.Context(), h.db.SQL, h.db.Builder().
		Update(h.res.Table).
		SetMap(values).
		Where(squirrel.Eq{"id": id})); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Error updating row")
		middleware.HandleAPIError(c, fmt.Errorf("error updating %s row: %w", h.res.Table, err))
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// Delete removes a row. Deleting a missing row still succeeds.
func (h *Handler) Delete(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if _, err := db.Exec(c.Request.Context(), h.db.SQL, h.db.Builder().
		Delete(h.res.Table).
		Where(squirrel.Eq{"id": id})); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Error deleting row")
		middleware.HandleAPIError(c, fmt.Errorf("error deleting %s row: %w", h.res.Table, err))
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

func (h *Handler) load(c *gin.Context, id int64) (map[string]interface{}, error) {
	rows, err := db.QueryMaps(c.Request.Context(), h.db.SQL, h.db.Builder().
		Select("*").
		From(h.res.Table).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Error loading row")
		return nil, fmt.Errorf("error loading %s row: %w", h.res.Table, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	return rows[0], nil
}

// decodeRow replaces stored JSON text with the decoded value
func (h *Handler) decodeRow(row map[string]interface{}) {
	for _, f := range h.res.JSONFields {
		if s, ok := row[f].(string); ok {
			row[f] = jsonfield.DecodeText(s)
		}
	}
}

// readBody decodes a JSON object body; an empty body is an empty object
func readBody(c *gin.Context) (map[string]interface{}, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	body := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func isTimestamp(field string) bool {
	return field == "created_at" || field == "updated_at"
}

// columnValue converts a decoded JSON value into a bindable parameter.
// Whole numbers become int64, nested values are stored as JSON text.
func columnValue(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case bool:
		return boolInt(t)
	case []interface{}, map[string]interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		return string(b)
	default:
		return v
	}
}

// truthy reports whether a request value counts as true.
// "", "0" and "false" are false, as are zero and null.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s != "" && s != "0" && s != "false"
	default:
		return true
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
