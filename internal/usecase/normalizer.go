package usecase

import (
	"errors"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

// ErrMissingURL marks a raw record without a usable url, the only field
// a record cannot be normalized without.
var ErrMissingURL = errors.New("record has no url")

// PlaceholderTitle substitutes for records whose source omits a title.
const PlaceholderTitle = "未命名商品"

const defaultCurrency = "TWD"

type ProductNormalizer struct {
	member string
	log    *logrus.Logger
}

// NewProductNormalizer builds a normalizer. A non-empty member id is
// appended to record URLs lacking a member query parameter before the
// id is computed, so stored links credit the member.
func NewProductNormalizer(member string, logger *logrus.Logger) *ProductNormalizer {
	return &ProductNormalizer{member: member, log: logger}
}

// Normalize maps a raw source record onto the fixed Product shape. The
// id is always recomputed from the final URL, even when the record
// carries its own id field.
func (n *ProductNormalizer) Normalize(raw domain.RawRecord, source string) (*domain.Product, error) {
	rawURL := strings.TrimSpace(cast.ToString(raw["url"]))
	if rawURL == "" {
		n.log.Warnf("Normalizer: Dropping '%s' record without url (title '%s')", source, cast.ToString(raw["title"]))
		return nil, ErrMissingURL
	}

	finalURL := n.decorate(rawURL)

	title := strings.TrimSpace(cast.ToString(raw["title"]))
	if title == "" {
		title = PlaceholderTitle
	}

	currency := strings.TrimSpace(cast.ToString(raw["currency"]))
	if currency == "" {
		currency = defaultCurrency
	}

	return &domain.Product{
		ID:       domain.MakeID(finalURL),
		Title:    title,
		URL:      finalURL,
		Price:    intField(raw, "price"),
		Currency: currency,
		Image:    stringField(raw, "image"),
		Stock:    intField(raw, "stock"),
		Source:   source,
	}, nil
}

// decorate appends member=<id> to URLs that do not carry one yet.
func (n *ProductNormalizer) decorate(rawURL string) string {
	if n.member == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		n.log.Warnf("Normalizer: Leaving unparseable url '%s' untouched: %v", rawURL, err)
		return rawURL
	}
	q := u.Query()
	if q.Get("member") != "" {
		return rawURL
	}
	q.Set("member", n.member)
	u.RawQuery = q.Encode()
	return u.String()
}

// intField coerces a loosely typed numeric value to *int. Absent or
// unparseable values become nil so they serialize as null.
func intField(raw domain.RawRecord, key string) *int {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return nil
	}
	return &i
}

func stringField(raw domain.RawRecord, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return nil
	}
	return &s
}
