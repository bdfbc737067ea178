package api

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"golang.org/x/crypto/hkdf"
)

const (
	pickerStateTTL      = 24 * time.Hour
	pickerStateIssuer   = "rangepicker"
	pickerStateKeyLabel = "rangepicker.picker-state.v1"
	pickerMonthLayout   = "2006-01"
	pickerDateLayout    = "2006-01-02"
)

var errInvalidPickerState = errors.New("invalid picker state")

// pickerState is everything needed to rebuild a controller between requests.
type pickerState struct {
	ID        string
	Profile   string
	Language  string
	Reference time.Time
	Selection models.Selection
	Value     *string
	Opened    bool
}

type pickerStateClaims struct {
	Profile  string  `json:"profile,omitempty"`
	Language string  `json:"lang,omitempty"`
	Month    string  `json:"month"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	Value    *string `json:"value,omitempty"`
	Opened   bool    `json:"opened,omitempty"`
	jwt.RegisteredClaims
}

type pickerStateCodec struct {
	key []byte
	now func() time.Time
}

// Dates travel as civil dates, so the codec never converts them between zones.
func newPickerStateCodec(secretKey []byte, now func() time.Time) (*pickerStateCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("picker state secret key is required")
	}
	key, err := derivePickerStateKey(secretKey)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &pickerStateCodec{key: key, now: now}, nil
}

func derivePickerStateKey(secretKey []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, secretKey, nil, []byte(pickerStateKeyLabel))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive picker state key: %w", err)
	}
	return key, nil
}

func (codec *pickerStateCodec) encode(state pickerState) (string, error) {
	issuedAt := codec.now()
	if state.ID == "" {
		state.ID = ulid.Make().String()
	}

	claims := pickerStateClaims{
		Profile:  state.Profile,
		Language: state.Language,
		Month:    state.Reference.Format(pickerMonthLayout),
		Value:    state.Value,
		Opened:   state.Opened,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        state.ID,
			Issuer:    pickerStateIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(pickerStateTTL)),
		},
	}
	if from := state.Selection.From; from != nil {
		claims.From = from.Format(pickerDateLayout)
		if to := state.Selection.To; to != nil {
			claims.To = to.Format(pickerDateLayout)
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(codec.key)
}

func (codec *pickerStateCodec) decode(raw string) (pickerState, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return pickerState{}, errInvalidPickerState
	}

	claims := &pickerStateClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return codec.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(pickerStateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(codec.now),
	)
	if err != nil || !token.Valid {
		return pickerState{}, errInvalidPickerState
	}

	reference, err := time.Parse(pickerMonthLayout, claims.Month)
	if err != nil {
		return pickerState{}, errInvalidPickerState
	}

	state := pickerState{
		ID:        claims.ID,
		Profile:   claims.Profile,
		Language:  claims.Language,
		Reference: reference,
		Value:     claims.Value,
		Opened:    claims.Opened,
	}
	if claims.From != "" {
		from, err := time.Parse(pickerDateLayout, claims.From)
		if err != nil {
			return pickerState{}, errInvalidPickerState
		}
		state.Selection.From = &from
	}
	if claims.To != "" {
		if state.Selection.From == nil {
			return pickerState{}, errInvalidPickerState
		}
		to, err := time.Parse(pickerDateLayout, claims.To)
		if err != nil {
			return pickerState{}, errInvalidPickerState
		}
		state.Selection.To = &to
	}
	return state, nil
}
