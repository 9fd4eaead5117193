// Package codec translates between proposal domain values and the JSON the
// remote store speaks. It owns every formatting convention on the wire:
// timestamp layout, fee representation and the filter query grammar.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
)

// TimestampLayout is ISO-8601 with millisecond precision and an explicit zone.
// Times are converted to UTC first, so the zone always renders as "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// localTimestampLayout is what the store emits for columns without a zone.
const localTimestampLayout = "2006-01-02T15:04:05.999999999"

const (
	keyLocation  = "location"
	keyStartTime = "start_time"
	keyEndTime   = "end_time"
	keyFee       = "fee"
)

type wireProposal struct {
	ID         int64        `json:"id"`
	CreatedAt  string       `json:"created_at"`
	Location   string       `json:"location"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
	Fee        *json.Number `json:"fee"`
	GiverID    *string      `json:"giver_id"`
	AcquirerID *string      `json:"acquirer_id"`
}

// FormatTimestamp renders t in the wire layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds, and the
// zone-less ISO form, which is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is not ISO-8601", s)
	}
	return t, nil
}

// EncodeSubmission maps s to its wire object. The fee key is present only
// when s.Fee is set, and a zero fee is encoded as 0.
func EncodeSubmission(s domain.Submission) (map[string]any, error) {
	obj := map[string]any{
		keyLocation:  s.Location,
		keyStartTime: FormatTimestamp(s.StartTime),
		keyEndTime:   FormatTimestamp(s.EndTime),
	}
	if s.Fee != nil {
		n, err := FeeNumber(*s.Fee)
		if err != nil {
			return nil, domain.NewError(domain.KindEncodingFailure, "", err)
		}
		obj[keyFee] = n
	}
	return obj, nil
}

// MarshalSubmission returns the JSON request body for s.
func MarshalSubmission(s domain.Submission) ([]byte, error) {
	obj, err := EncodeSubmission(s)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, domain.NewError(domain.KindEncodingFailure, "", fmt.Errorf("marshal submission: %w", err))
	}
	return body, nil
}

// FeeNumber renders f as a plain JSON number straight from its fixed-point
// value, e.g. 1250 cents -> 12.5, 0 -> 0.
func FeeNumber(f domain.Fee) (json.Number, error) {
	c := f.Cents()
	if c < 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrNegativeFee, f)
	}
	units, frac := c/100, c%100
	if frac == 0 {
		return json.Number(strconv.FormatInt(units, 10)), nil
	}
	s := fmt.Sprintf("%d.%02d", units, frac)
	return json.Number(strings.TrimSuffix(s, "0")), nil
}

// DecodeProposalList parses a JSON array of proposal records. It either
// returns every record in wire order or fails as a whole.
func DecodeProposalList(data []byte) ([]domain.Proposal, error) {
	var rows []wireProposal
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, domain.NewError(domain.KindDecodingFailure, "", err)
	}

	out := make([]domain.Proposal, 0, len(rows))
	for i, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, domain.NewError(domain.KindDecodingFailure, "", fmt.Errorf("record %d: %w", i, err))
		}
		out = append(out, p)
	}
	return out, nil
}

func (w wireProposal) toDomain() (domain.Proposal, error) {
	createdAt, err := ParseTimestamp(w.CreatedAt)
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("created_at: %w", err)
	}
	startTime, err := ParseTimestamp(w.StartTime)
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("start_time: %w", err)
	}
	endTime, err := ParseTimestamp(w.EndTime)
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("end_time: %w", err)
	}

	p := domain.Proposal{
		ID:         w.ID,
		CreatedAt:  createdAt,
		Location:   w.Location,
		StartTime:  startTime,
		EndTime:    endTime,
		GiverID:    w.GiverID,
		AcquirerID: w.AcquirerID,
	}
	if w.Fee != nil {
		fee, err := parseFeeNumber(*w.Fee)
		if err != nil {
			return domain.Proposal{}, fmt.Errorf("fee: %w", err)
		}
		p.Fee = &fee
	}
	return p, nil
}

// parseFeeNumber reads plain decimals exactly and falls back to rounding
// through float64 for exponent forms or extra fractional digits.
func parseFeeNumber(n json.Number) (domain.Fee, error) {
	fee, err := domain.ParseFee(n.String())
	if err == nil || errors.Is(err, domain.ErrNegativeFee) {
		return fee, err
	}
	f, err := n.Float64()
	if err != nil {
		return domain.Fee{}, fmt.Errorf("%w: %v", domain.ErrInvalidFee, err)
	}
	return domain.FeeFromFloat(f)
}

// MessageBody is the error object the store returns on rejection.
type MessageBody struct {
	Message *string `json:"message"`
}

// DecodeErrorMessage extracts a top-level "message" string. It reports nil on
// any parse failure.
func DecodeErrorMessage(data []byte) *string {
	var body MessageBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}
	return body.Message
}
