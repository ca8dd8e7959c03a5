package application

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/domain/entity"
	repo "github.com/adityawp/casaly/internal/domain/repository"
	"github.com/adityawp/casaly/pkg/helpers"
	"github.com/adityawp/casaly/pkg/mailer"
)

const typeCountsKey = "properties:counts:type"

// PropertyService implements listing reads, owner-scoped mutations, search,
// image upload, and owner inquiries.
type PropertyService struct {
	Props     repo.PropertyRepository
	Users     repo.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	ES        *elasticsearch.Client
	ESIndex   string
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
	CountsTTL time.Duration
}

func NewPropertyService(props repo.PropertyRepository, users repo.UserRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, logger *logrus.Logger, countsTTL time.Duration) *PropertyService {
	return &PropertyService{
		Props:     props,
		Users:     users,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Redis:     rdb,
		ES:        es,
		ESIndex:   esIndex,
		Pub:       pub,
		Logger:    logger,
		CountsTTL: countsTTL,
	}
}

func (s *PropertyService) List(ctx context.Context, typeFilter string) ([]*entity.Property, error) {
	return s.Props.List(ctx, typeFilter)
}

func (s *PropertyService) Featured(ctx context.Context) ([]*entity.Property, error) {
	return s.Props.ListFeatured(ctx)
}

// TypeCounts reports listing counts for the known types, zero-filled, with a
// short-lived Redis cache in front of the store.
func (s *PropertyService) TypeCounts(ctx context.Context) (map[string]int64, error) {
	if s.Redis != nil {
		cached := map[string]int64{}
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, typeCountsKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	raw, err := s.Props.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(entity.PropertyTypes))
	for _, t := range entity.PropertyTypes {
		counts[t] = raw[t]
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, typeCountsKey, counts, s.CountsTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("type counts cache write failed")
		}
	}
	return counts, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*entity.Property, error) {
	return s.Props.GetByID(ctx, id)
}

type CreatePropertyInput struct {
	Title       string
	Type        string
	Description string
	ImageURL    string
	Price       int64
	Sqmeters    int
	Beds        int
	Featured    bool
}

// Create stores a new listing owned by ownerID.
func (s *PropertyService) Create(ctx context.Context, ownerID string, in CreatePropertyInput) (*entity.Property, error) {
	p := &entity.Property{
		Title:        in.Title,
		Type:         in.Type,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Price:        in.Price,
		Sqmeters:     in.Sqmeters,
		Beds:         in.Beds,
		Featured:     in.Featured,
		CurrentOwner: ownerID,
	}
	if err := s.Props.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCounts(ctx)
	_ = s.indexProperty(ctx, p)
	return p, nil
}

type UpdatePropertyInput struct {
	Title       string
	Type        string
	Description string
	ImageURL    string
	Price       int64
	Sqmeters    int
	Beds        int
	Featured    *bool
}

// Update applies a partial update after the ownership check. The check runs
// after the listing is loaded and before any write.
func (s *PropertyService) Update(ctx context.Context, id, subjectID string, in UpdatePropertyInput) (*entity.Property, error) {
	p, err := s.Props.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CurrentOwner != subjectID {
		return nil, apperr.New(apperr.KindForbidden, "not allowed to update other users' properties")
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Type != "" {
		p.Type = in.Type
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}
	if in.Price > 0 {
		p.Price = in.Price
	}
	if in.Sqmeters > 0 {
		p.Sqmeters = in.Sqmeters
	}
	if in.Beds > 0 {
		p.Beds = in.Beds
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	if err := s.Props.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCounts(ctx)
	_ = s.indexProperty(ctx, p)
	return p, nil
}

// Delete removes a listing after the ownership check.
func (s *PropertyService) Delete(ctx context.Context, id, subjectID string) error {
	p, err := s.Props.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.CurrentOwner != subjectID {
		return apperr.New(apperr.KindForbidden, "not allowed to delete other users' properties")
	}

	if err := s.Props.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCounts(ctx)
	s.deleteFromIndex(ctx, id)
	return nil
}

// UploadImage stores a listing image in GCS and returns its public URL.
func (s *PropertyService) UploadImage(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperr.New(apperr.KindStore, "image storage not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("listings", userID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// Inquire queues an inquiry email to the listing owner.
func (s *PropertyService) Inquire(ctx context.Context, propertyID, fromUserID, message string) error {
	if s.Pub == nil {
		return apperr.New(apperr.KindStore, "inquiry delivery unavailable")
	}
	p, err := s.Props.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	owner, err := s.Users.GetByID(ctx, p.CurrentOwner)
	if err != nil {
		return err
	}
	sender, err := s.Users.GetByID(ctx, fromUserID)
	if err != nil {
		return err
	}

	job := mailer.InquiryJob{
		To:            owner.Email,
		PropertyID:    p.ID,
		PropertyTitle: p.Title,
		FromName:      sender.Username,
		FromEmail:     sender.Email,
		Message:       message,
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Error("publish inquiry failed")
		}
		return apperr.Wrap(apperr.KindStore, "inquiry delivery failed", err)
	}
	return nil
}

func (s *PropertyService) invalidateCounts(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, typeCountsKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("type counts cache invalidation failed")
	}
}

func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":            p.ID,
		"title":         p.Title,
		"type":          p.Type,
		"description":   p.Description,
		"image_url":     p.ImageURL,
		"price":         p.Price,
		"sqmeters":      p.Sqmeters,
		"beds":          p.Beds,
		"featured":      p.Featured,
		"current_owner": p.CurrentOwner,
		"created_at":    p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":    p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PropertyService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over title, description, and type.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "type"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
