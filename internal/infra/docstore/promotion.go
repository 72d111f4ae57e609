package docstore

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Server error codes for Unauthorized and AuthenticationFailed.
const (
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// promotionDoc keeps the validity fields raw: documents written by other
// tools store them as strings, BSON dates or BSON timestamps.
type promotionDoc struct {
	ID                   string        `bson:"_id"`
	Title                string        `bson:"title"`
	Description          string        `bson:"description"`
	Image                string        `bson:"image"`
	Discount             float64       `bson:"discount"`
	ApplicableCategories []string      `bson:"applicableCategories"`
	ValidFrom            bson.RawValue `bson:"validFrom"`
	ValidUntil           bson.RawValue `bson:"validUntil"`
	IsActive             bool          `bson:"isActive"`
	PromoCode            *string       `bson:"promoCode"`
	CreatedAt            time.Time     `bson:"createdAt"`
	UpdatedAt            time.Time     `bson:"updatedAt"`
}

type promotionWriteDoc struct {
	ID                   string     `bson:"_id"`
	Title                string     `bson:"title"`
	Description          string     `bson:"description"`
	Image                string     `bson:"image"`
	Discount             float64    `bson:"discount"`
	ApplicableCategories []string   `bson:"applicableCategories"`
	ValidFrom            *time.Time `bson:"validFrom"`
	ValidUntil           *time.Time `bson:"validUntil"`
	IsActive             bool       `bson:"isActive"`
	PromoCode            *string    `bson:"promoCode,omitempty"`
	CreatedAt            time.Time  `bson:"createdAt"`
	UpdatedAt            time.Time  `bson:"updatedAt"`
}

type PromotionStore struct {
	coll  *mongo.Collection
	clock clock.Clock
}

func NewPromotionStore(db *mongo.Database, collection string, clk clock.Clock) *PromotionStore {
	return &PromotionStore{
		coll:  db.Collection(collection),
		clock: clk,
	}
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (s *PromotionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	})
	if err != nil {
		return wrapMongoErr("failed to create promotion indexes", err)
	}
	return nil
}

func (s *PromotionStore) GetAll(ctx context.Context) ([]promotion.Promotion, error) {
	return s.find(ctx, bson.M{}, "failed to list promotions")
}

func (s *PromotionStore) GetActive(ctx context.Context) ([]promotion.Promotion, error) {
	return s.find(ctx, bson.M{"isActive": true}, "failed to list active promotions")
}

func (s *PromotionStore) GetByID(ctx context.Context, id string) (*promotion.Promotion, error) {
	var doc promotionDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, wrapMongoErr("failed to get promotion", err)
	}
	p := fromDoc(doc)
	return &p, nil
}

func (s *PromotionStore) Add(ctx context.Context, draft promotion.Draft) (string, error) {
	now := s.clock.Now().UTC()
	doc := promotionWriteDoc{
		ID:                   uuid.NewString(),
		Title:                draft.Title,
		Description:          draft.Description,
		Image:                draft.Image,
		Discount:             draft.Discount,
		ApplicableCategories: categoriesOrEmpty(draft.ApplicableCategories),
		ValidFrom:            draft.ValidFrom.Ptr(),
		ValidUntil:           draft.ValidUntil.Ptr(),
		IsActive:             draft.IsActive,
		PromoCode:            draft.PromoCode,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", wrapMongoErr("failed to create promotion", err)
	}
	return doc.ID, nil
}

func (s *PromotionStore) Update(ctx context.Context, id string, p promotion.Patch) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, patchUpdate(p, s.clock.Now().UTC()))
	if err != nil {
		return wrapMongoErr("failed to update promotion", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PromotionStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapMongoErr("failed to delete promotion", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PromotionStore) find(ctx context.Context, filter bson.M, msg string) ([]promotion.Promotion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapMongoErr(msg, err)
	}

	var docs []promotionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapMongoErr(msg, err)
	}

	out := make([]promotion.Promotion, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDoc(d))
	}
	return out, nil
}

func patchUpdate(p promotion.Patch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	unset := bson.M{}

	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Discount != nil {
		set["discount"] = *p.Discount
	}
	if p.ApplicableCategories != nil {
		set["applicableCategories"] = categoriesOrEmpty(*p.ApplicableCategories)
	}
	if p.ValidFrom != nil {
		set["validFrom"] = p.ValidFrom.Ptr()
	}
	if p.ValidUntil != nil {
		set["validUntil"] = p.ValidUntil.Ptr()
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.PromoCode != nil {
		if *p.PromoCode == "" {
			unset["promoCode"] = ""
		} else {
			set["promoCode"] = *p.PromoCode
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func fromDoc(d promotionDoc) promotion.Promotion {
	p := promotion.Promotion{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Discount:    d.Discount,
		ValidFrom:   InstantFromBSON(d.ValidFrom),
		ValidUntil:  InstantFromBSON(d.ValidUntil),
		IsActive:    d.IsActive,
		PromoCode:   d.PromoCode,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if len(d.ApplicableCategories) > 0 {
		p.ApplicableCategories = d.ApplicableCategories
	}
	return p
}

func categoriesOrEmpty(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}

// InstantFromBSON accepts BSON dates, BSON timestamps, strings and
// {seconds, nanoseconds} sub-documents. Anything else is an invalid Instant.
func InstantFromBSON(rv bson.RawValue) promotion.Instant {
	switch rv.Type {
	case bson.TypeDateTime:
		if ms, ok := rv.DateTimeOK(); ok {
			return promotion.InstantOf(time.UnixMilli(ms).UTC())
		}
	case bson.TypeTimestamp:
		if t, _, ok := rv.TimestampOK(); ok {
			return promotion.InstantFromTimestamp(int64(t), 0)
		}
	case bson.TypeString:
		if s, ok := rv.StringValueOK(); ok {
			return promotion.ParseInstant(s)
		}
	case bson.TypeEmbeddedDocument:
		if doc, ok := rv.DocumentOK(); ok {
			return instantFromSecondsDoc(doc)
		}
	}
	return promotion.Instant{}
}

func instantFromSecondsDoc(doc bson.Raw) promotion.Instant {
	for _, keys := range [][2]string{{"seconds", "nanoseconds"}, {"_seconds", "_nanoseconds"}} {
		secs, ok := integerValue(doc.Lookup(keys[0]))
		if !ok {
			continue
		}
		nanos, _ := integerValue(doc.Lookup(keys[1]))
		return promotion.InstantFromTimestamp(secs, nanos)
	}
	return promotion.Instant{}
}

func integerValue(rv bson.RawValue) (int64, bool) {
	switch rv.Type {
	case bson.TypeInt32:
		v, ok := rv.Int32OK()
		return int64(v), ok
	case bson.TypeInt64:
		return rv.Int64OK()
	case bson.TypeDouble:
		v, ok := rv.DoubleOK()
		return int64(v), ok
	}
	return 0, false
}

func wrapMongoErr(msg string, err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return infra.WrapRepoErr(msg, err, infra.KindUnavailable)
	case isUnauthorized(err):
		return infra.WrapRepoErr(msg, err, infra.KindPermissionDenied)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}

func isUnauthorized(err error) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(codeUnauthorized) || se.HasErrorCode(codeAuthenticationFailed)
	}
	return false
}
