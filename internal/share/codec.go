package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/shopping"
)

// Sentinel errors. ErrTooLong is distinct from ErrMalformed so the UI
// can tell "shrink your list" apart from "this link is broken".
var (
	ErrMalformed = errors.New("share: malformed payload")
	ErrTooLong   = errors.New("share: link exceeds maximum length")
)

// tagDeflate marks the current envelope: deflate-compressed JSON in
// the URL-safe base64 alphabet. Untagged payloads take the legacy
// path, which predates compression and must keep decoding forever.
// Legacy strings always begin with the base64 of a percent-encoded
// "{", so the tag cannot collide with them.
const tagDeflate = 'c'

// maxInflated bounds decompression so a hostile link cannot balloon.
const maxInflated = 1 << 20

// Basket is the shareable unit for a shopping trip: the list, the
// recipe-serving selections it was built from, and the unit system the
// encoded amounts are in.
type Basket struct {
	Items      []shopping.Item
	Selections map[int64]int
	UseMetric  bool
}

// wireItem is the minimal projection of a shopping item. Only the
// amount for the sender's active unit system travels; the other unit
// is not recoverable on the receiving side.
type wireItem struct {
	Name     string `json:"n"`
	Amount   string `json:"a,omitempty"`
	Category string `json:"cat,omitempty"`
	Aisle    string `json:"aisle,omitempty"`
}

type wireBasket struct {
	Items      []wireItem    `json:"i"`
	Selections map[int64]int `json:"r,omitempty"`
	UseMetric  bool          `json:"m,omitempty"`
}

// EncodeBasket produces the tagged, compressed, URL-safe encoding of a
// basket. Items are projected down to name, the active-unit amount,
// and grouping hints; empty fields are omitted entirely.
func EncodeBasket(items []shopping.Item, selections map[int64]int, useMetric bool) (string, error) {
	wire := wireBasket{
		Items:      make([]wireItem, 0, len(items)),
		Selections: selections,
		UseMetric:  useMetric,
	}
	for _, it := range items {
		wire.Items = append(wire.Items, wireItem{
			Name:     it.Name,
			Amount:   it.DisplayAmount(useMetric),
			Category: it.Category,
			Aisle:    it.Aisle,
		})
	}
	return encodeEnvelope(wire)
}

// DecodeBasket recovers a basket from an encoded string produced by
// any historical encoder generation. Items come back with fresh ids
// and unchecked regardless of the sender's state. Any failure at any
// stage yields ErrMalformed; nothing partial ever escapes.
func DecodeBasket(encoded string) (*Basket, error) {
	raw, err := decodeEnvelope(encoded)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Items      json.RawMessage `json:"i"`
		ItemsFull  json.RawMessage `json:"items"`
		Selections map[int64]int   `json:"r"`
		SelFull    map[int64]int   `json:"selectedRecipes"`
		UseMetric  bool            `json:"m"`
		MetricFull bool            `json:"useMetric"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	itemsRaw := wire.Items
	if itemsRaw == nil {
		itemsRaw = wire.ItemsFull
	}
	if itemsRaw == nil {
		return nil, fmt.Errorf("%w: no items", ErrMalformed)
	}

	var compat []wireItemCompat
	if err := json.Unmarshal(itemsRaw, &compat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	basket := &Basket{
		Items:      make([]shopping.Item, 0, len(compat)),
		Selections: wire.Selections,
		UseMetric:  wire.UseMetric || wire.MetricFull,
	}
	if basket.Selections == nil {
		basket.Selections = wire.SelFull
	}
	for _, c := range compat {
		amount := c.amount()
		// Checked state and original ids are sender-local; shared
		// items always arrive fresh and unticked.
		basket.Items = append(basket.Items, shopping.NewItem(c.name(), amount, amount, c.category(), c.Aisle))
	}
	return basket, nil
}

// wireItemCompat accepts both the abbreviated keys the current encoder
// writes and the full field names older links carry.
type wireItemCompat struct {
	N        string `json:"n"`
	Name     string `json:"name"`
	A        string `json:"a"`
	Amount   string `json:"amount"`
	Cat      string `json:"cat"`
	Category string `json:"category"`
	Aisle    string `json:"aisle"`
}

func (c wireItemCompat) name() string {
	if c.N != "" {
		return c.N
	}
	return c.Name
}

func (c wireItemCompat) amount() string {
	if c.A != "" {
		return c.A
	}
	return c.Amount
}

func (c wireItemCompat) category() string {
	if c.Cat != "" {
		return c.Cat
	}
	return c.Category
}

// wireRecipe projects a recipe for by-value sharing. Every textual
// field travels; the image never does.
type wireRecipe struct {
	Title        string           `json:"t"`
	Description  string           `json:"d,omitempty"`
	Category     string           `json:"c,omitempty"`
	Origin       string           `json:"o,omitempty"`
	PrepTime     string           `json:"pt,omitempty"`
	CookTime     string           `json:"ct,omitempty"`
	Servings     int              `json:"s,omitempty"`
	Difficulty   string           `json:"df,omitempty"`
	CookingStyle string           `json:"cs,omitempty"`
	Calories     int              `json:"cal,omitempty"`
	Ingredients  []wireIngredient `json:"i,omitempty"`
	Steps        []string         `json:"st,omitempty"`
	Tips         []string         `json:"tp,omitempty"`
	Tags         []string         `json:"tg,omitempty"`
}

type wireIngredient struct {
	Name         string `json:"n"`
	Amount       string `json:"a,omitempty"`
	AmountMetric string `json:"m,omitempty"`
}

// EncodeRecipe produces the tagged, compressed encoding of a recipe
// for by-value sharing.
func EncodeRecipe(r recipe.Recipe) (string, error) {
	wire := wireRecipe{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Origin:       r.Origin,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   string(r.Difficulty),
		CookingStyle: r.CookingStyle,
		Calories:     r.Calories,
		Steps:        r.Steps,
		Tips:         r.Tips,
		Tags:         r.Tags,
	}
	for _, ing := range r.Ingredients {
		wire.Ingredients = append(wire.Ingredients, wireIngredient{
			Name:         ing.Name,
			Amount:       ing.Amount,
			AmountMetric: ing.AmountMetric,
		})
	}
	return encodeEnvelope(wire)
}

// DecodeRecipe recovers a recipe shared by value. No legacy path
// exists for recipes, so the tag is required. The result carries a
// fresh generated id and is marked as shared.
func DecodeRecipe(encoded string) (*recipe.Recipe, error) {
	if encoded == "" || encoded[0] != tagDeflate {
		return nil, fmt.Errorf("%w: missing format tag", ErrMalformed)
	}
	raw, err := decodeDeflate(encoded[1:])
	if err != nil {
		return nil, err
	}

	var wire wireRecipe
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if wire.Title == "" {
		return nil, fmt.Errorf("%w: recipe has no title", ErrMalformed)
	}

	r := &recipe.Recipe{
		ID:           recipe.NewID(),
		Title:        wire.Title,
		Description:  wire.Description,
		Category:     wire.Category,
		Origin:       wire.Origin,
		PrepTime:     wire.PrepTime,
		CookTime:     wire.CookTime,
		Servings:     wire.Servings,
		Difficulty:   recipe.Difficulty(wire.Difficulty),
		CookingStyle: wire.CookingStyle,
		Calories:     wire.Calories,
		Steps:        wire.Steps,
		Tips:         wire.Tips,
		Tags:         wire.Tags,
		Shared:       true,
	}
	for _, ing := range wire.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			Name:         ing.Name,
			Amount:       ing.Amount,
			AmountMetric: ing.AmountMetric,
		})
	}
	return r, nil
}

// encodeEnvelope runs the current pipeline: compact JSON, deflate,
// URL-safe base64, tag prefix.
func encodeEnvelope(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("init compressor: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("compress share payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compress share payload: %w", err)
	}

	return string(tagDeflate) + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeEnvelope dispatches on the format tag: tagged payloads take
// the deflate path, anything else is tried as a legacy untagged
// encoding.
func decodeEnvelope(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformed)
	}
	if encoded[0] == tagDeflate {
		return decodeDeflate(encoded[1:])
	}
	return decodeLegacy(encoded)
}

func decodeDeflate(encoded string) ([]byte, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()

	raw, err := io.ReadAll(io.LimitReader(r, maxInflated))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return raw, nil
}

// decodeLegacy reverses the pre-compression encoding: standard base64
// of a percent-encoded JSON document. Links in this format still
// circulate and must decode indefinitely.
func decodeLegacy(encoded string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Some producers strip padding.
		decoded, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	raw, err := percentDecode(string(decoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return []byte(raw), nil
}

// percentDecode undoes encodeURIComponent-style escaping. A literal
// "+" must survive as-is, so query unescaping rules do not apply.
func percentDecode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", errors.New("truncated percent escape")
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", errors.New("invalid percent escape")
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
