package serviceImp

import (
	"context"
	"log"
	"mime/multipart"
	"strings"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	repo "farmintel/pkg/crop/repository"
	"farmintel/pkg/crop/service"
	"farmintel/pkg/textutil"
	"farmintel/pkg/upload"
	"farmintel/pkg/validate"
)

const (
	defaultCategory = "Vegetables"
	defaultSeason   = "Rabi"
)

type cropSvc struct {
	r      repo.CropRepository
	images service.ImageStore
}

func NewCropService(r repo.CropRepository, images service.ImageStore) service.CropService {
	return &cropSvc{r: r, images: images}
}

func (s *cropSvc) ListForFarmer(ctx context.Context) ([]entities.Crop, error) {
	return s.r.ListActive(ctx)
}

func (s *cropSvc) DetailForFarmer(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindActive(ctx, id)
}

func (s *cropSvc) ListForAdmin(ctx context.Context) ([]entities.Crop, error) {
	return s.r.ListAll(ctx)
}

func (s *cropSvc) Get(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Create(ctx context.Context, in service.CropForm, images []*multipart.FileHeader) (*entities.Crop, error) {
	c, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	paths, err := s.images.SaveAll(upload.Crops, images)
	if err != nil {
		s.discard(paths)
		return nil, err
	}
	c.Active = true
	for i, p := range paths {
		c.Images = append(c.Images, entities.CropImage{Position: i, Path: p})
	}
	if err := s.r.Create(ctx, c); err != nil {
		s.discard(paths)
		return nil, err
	}
	return s.r.FindByID(ctx, c.ID)
}

func (s *cropSvc) Update(ctx context.Context, id uint, in service.CropForm, images []*multipart.FileHeader) (*entities.Crop, error) {
	c, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	paths, err := s.images.SaveAll(upload.Crops, images)
	if err != nil {
		s.discard(paths)
		return nil, err
	}
	if err := s.r.Update(ctx, c, paths); err != nil {
		s.discard(paths)
		return nil, err
	}
	return s.r.FindByID(ctx, id)
}

// Delete is a hard delete. Financial records name crops as free text and
// are left alone.
func (s *cropSvc) Delete(ctx context.Context, id uint) error {
	paths, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.discard(paths)
	return nil
}

func (s *cropSvc) Toggle(ctx context.Context, id uint) (*entities.Crop, error) {
	if err := s.r.Toggle(ctx, id); err != nil {
		return nil, err
	}
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) discard(paths []string) {
	for _, p := range paths {
		if err := s.images.Remove(p); err != nil {
			log.Printf("[crop] remove image %s: %v", p, err)
		}
	}
}

func fromForm(in service.CropForm) (*entities.Crop, error) {
	if ok, msg := validate.First(
		validate.C(validate.CropName(in.Name)),
		validate.C(validate.NonNegative(in.AveragePrice, "Average price", false)),
		validate.C(validate.NonNegative(in.MarketPrice, "Market price", false)),
	); !ok {
		return nil, apperr.Validation(msg)
	}
	return &entities.Crop{
		Name:           strings.TrimSpace(in.Name),
		Category:       orDefault(in.Category, defaultCategory),
		Duration:       strings.TrimSpace(in.Duration),
		AveragePrice:   validate.ParseDecimalPtr(in.AveragePrice),
		MarketPrice:    validate.ParseDecimalPtr(in.MarketPrice),
		PesticidesName: strings.TrimSpace(in.PesticidesName),
		BestSeedsName:  strings.TrimSpace(in.BestSeedsName),
		FertilizerName: strings.TrimSpace(in.FertilizerName),
		Season:         orDefault(in.Season, defaultSeason),
		SoilType:       strings.TrimSpace(in.SoilType),
		IndiaDemand:    strings.TrimSpace(in.IndiaDemand),
		Description:    textutil.PlainText(in.Description),
	}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
