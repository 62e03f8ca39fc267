package serviceImp

import (
	"context"
	"strings"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	repo "farmintel/pkg/scheme/repository"
	"farmintel/pkg/scheme/service"
	"farmintel/pkg/textutil"
	"farmintel/pkg/validate"
)

const (
	nameMaxLen        = 200
	defaultSchemeType = "Central"
)

type schemeSvc struct{ r repo.SchemeRepository }

func NewSchemeService(r repo.SchemeRepository) service.SchemeService { return &schemeSvc{r} }

func (s *schemeSvc) ListForFarmer(ctx context.Context) ([]entities.Scheme, error) {
	return s.r.ListByStatus(ctx, entities.SchemeActive)
}

func (s *schemeSvc) ListForAdmin(ctx context.Context) ([]entities.Scheme, error) {
	return s.r.ListAll(ctx)
}

func (s *schemeSvc) Get(ctx context.Context, id uint) (*entities.Scheme, error) {
	return s.r.FindByID(ctx, id)
}

func (s *schemeSvc) Create(ctx context.Context, in service.SchemeForm) (*entities.Scheme, error) {
	sc, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *schemeSvc) Update(ctx context.Context, id uint, in service.SchemeForm) (*entities.Scheme, error) {
	sc, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	sc.ID = id
	if err := s.r.Update(ctx, sc); err != nil {
		return nil, err
	}
	return s.r.FindByID(ctx, id)
}

func (s *schemeSvc) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}

func parseStatus(v string) (string, bool) {
	switch strings.TrimSpace(v) {
	case "", entities.SchemeActive:
		return entities.SchemeActive, true
	case entities.SchemeInactive:
		return entities.SchemeInactive, true
	}
	return "", false
}

func fromForm(in service.SchemeForm) (*entities.Scheme, error) {
	status, okStatus := parseStatus(in.Status)
	link := strings.TrimSpace(in.ApplyLink)
	if ok, msg := validate.First(
		validate.C(validate.RequiredString(in.Name, "Scheme name", 1, nameMaxLen)),
		validate.C(okStatus, "Status must be Active or Inactive."),
		validate.C(link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://"),
			"Apply link must start with http:// or https://."),
	); !ok {
		return nil, apperr.Validation(msg)
	}
	schemeType := strings.TrimSpace(in.SchemeType)
	if schemeType == "" {
		schemeType = defaultSchemeType
	}
	return &entities.Scheme{
		Name:                strings.TrimSpace(in.Name),
		SchemeType:          schemeType,
		EligibleCrop:        strings.TrimSpace(in.EligibleCrop),
		EligibilityCriteria: textutil.PlainText(in.EligibilityCriteria),
		Benefits:            textutil.PlainText(in.Benefits),
		RequiredDocuments:   textutil.PlainText(in.RequiredDocuments),
		ApplyLink:           link,
		Status:              status,
	}, nil
}
