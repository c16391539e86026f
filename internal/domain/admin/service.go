package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"cattery-storefront/internal/domain/catalog"
	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/media"
	"cattery-storefront/internal/ports/store"

	"go.uber.org/zap"
)

// Service es la plomería del back-office: valida el form y escribe un
// registro por operación (last-write-wins, sin transacciones).
type Service struct {
	store    store.RecordStore
	catalog  *catalog.Service
	uploader media.Uploader
	log      *zap.Logger
	now      func() time.Time
}

func NewService(st store.RecordStore, cat *catalog.Service, up media.Uploader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, catalog: cat, uploader: up, log: log.Named("admin"), now: time.Now}
}

// Dashboard cuenta kittens, disponibles, razas y consultas.
func (s *Service) Dashboard(ctx context.Context) (Stats, error) {
	var st Stats
	var err error

	if st.TotalKittens, err = s.count(ctx, store.Kittens); err != nil {
		return Stats{}, err
	}
	if st.Breeds, err = s.count(ctx, store.Breeds); err != nil {
		return Stats{}, err
	}
	if st.Inquiries, err = s.count(ctx, store.Inquiries); err != nil {
		return Stats{}, err
	}

	avail := s.catalog.ListKittens(ctx, catalog.ListOptions{Filter: catalog.Filter{AvailableOnly: true}})
	var pe *errs.PersistenceError
	if errors.As(avail.Err, &pe) {
		return Stats{}, avail.Err
	}
	st.AvailableKittens = len(avail.Items)
	return st, nil
}

func (s *Service) count(ctx context.Context, res store.Resource) (int, error) {
	n, err := s.store.Count(ctx, res)
	if err != nil {
		s.log.Error("count failed", zap.String("resource", string(res)), zap.Error(err))
		return 0, &errs.PersistenceError{Op: "count " + string(res), Err: err}
	}
	return n, nil
}

// ---- kittens ----

// CreateKitten sube la imagen y después inserta. Si el insert falla la imagen
// queda huérfana en el CDN; se loguea el file_id para limpiarla a mano.
func (s *Service) CreateKitten(ctx context.Context, in KittenInput, image *media.File) (catalog.Kitten, error) {
	in = normalizeKitten(in)
	if err := validateKitten(in, image == nil); err != nil {
		return catalog.Kitten{}, err
	}

	up, err := s.upload(ctx, *image, in.Name)
	if err != nil {
		return catalog.Kitten{}, err
	}

	rec := kittenRecord(in)
	rec["main_image_url"] = up.URL
	rec["updated_at"] = s.now().UTC()

	saved, err := s.store.Insert(ctx, store.Kittens, rec)
	if err != nil {
		s.log.Warn("kitten insert failed after upload; image orphaned",
			zap.String("file_id", up.FileID),
			zap.String("url", up.URL),
			zap.Error(err),
		)
		return catalog.Kitten{}, &errs.PersistenceError{Op: "insert kittens", Err: err}
	}
	return catalog.MapKitten(saved)
}

// UpdateKitten reemplaza los campos editables. image nil conserva la imagen actual.
func (s *Service) UpdateKitten(ctx context.Context, id string, in KittenInput, image *media.File) (catalog.Kitten, error) {
	in = normalizeKitten(in)
	if err := validateKitten(in, false); err != nil {
		return catalog.Kitten{}, err
	}

	rec := kittenRecord(in)
	rec["updated_at"] = s.now().UTC()

	var up media.Uploaded
	if image != nil {
		var err error
		if up, err = s.upload(ctx, *image, in.Name); err != nil {
			return catalog.Kitten{}, err
		}
		rec["main_image_url"] = up.URL
	}

	saved, err := s.store.UpdateByID(ctx, store.Kittens, id, rec)
	if err != nil {
		if up.FileID != "" {
			s.log.Warn("kitten update failed after upload; image orphaned",
				zap.String("kitten_id", id), zap.String("file_id", up.FileID), zap.Error(err))
		}
		return catalog.Kitten{}, persistence("update kittens", err)
	}
	return catalog.MapKitten(saved)
}

func (s *Service) DeleteKitten(ctx context.Context, id string) error {
	return persistence("delete kittens", s.store.DeleteByID(ctx, store.Kittens, id))
}

func (s *Service) upload(ctx context.Context, f media.File, kittenName string) (media.Uploaded, error) {
	if s.uploader == nil {
		return media.Uploaded{}, errs.ErrNotConfigured
	}
	up, err := s.uploader.Upload(ctx, f, media.UploadOptions{
		Tags: []string{"kitten", slug(kittenName)},
	})
	if err != nil {
		s.log.Error("image upload failed", zap.String("file", f.Name), zap.Error(err))
		return media.Uploaded{}, err
	}
	return up, nil
}

func normalizeKitten(in KittenInput) KittenInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Gender = strings.ToLower(strings.TrimSpace(in.Gender))
	in.Description = strings.TrimSpace(in.Description)
	urls := make([]string, 0, len(in.ExtraImageURLs))
	for _, u := range in.ExtraImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	in.ExtraImageURLs = urls
	return in
}

func validateKitten(in KittenInput, missingImage bool) error {
	fields := []string{}
	if missingImage {
		fields = append(fields, "image")
	}
	if err := errs.Missing(map[string]string{
		"name":        in.Name,
		"breed":       in.Breed,
		"description": in.Description,
	}, "name", "breed", "description"); err != nil {
		var ve *errs.ValidationError
		errors.As(err, &ve)
		fields = append(fields, ve.Fields...)
	}
	if in.Gender != string(catalog.GenderMale) && in.Gender != string(catalog.GenderFemale) {
		fields = append(fields, "gender")
	}
	if in.AgeWeeks < 0 {
		fields = append(fields, "age_weeks")
	}
	if in.Price < 0 {
		fields = append(fields, "price")
	}
	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}

func kittenRecord(in KittenInput) store.Record {
	return store.Record{
		"name":             in.Name,
		"breed":            in.Breed,
		"gender":           in.Gender,
		"age_weeks":        in.AgeWeeks,
		"price":            in.Price,
		"description":      in.Description,
		"is_available":     in.IsAvailable,
		"extra_image_urls": in.ExtraImageURLs,
	}
}

// ---- breeds ----

func (s *Service) CreateBreed(ctx context.Context, in BreedInput) (catalog.Breed, error) {
	rec, err := breedRecord(in)
	if err != nil {
		return catalog.Breed{}, err
	}
	rec["updated_at"] = s.now().UTC()
	saved, err := s.store.Insert(ctx, store.Breeds, rec)
	if err != nil {
		return catalog.Breed{}, &errs.PersistenceError{Op: "insert breeds", Err: err}
	}
	return catalog.MapBreed(saved)
}

func (s *Service) UpdateBreed(ctx context.Context, id string, in BreedInput) (catalog.Breed, error) {
	rec, err := breedRecord(in)
	if err != nil {
		return catalog.Breed{}, err
	}
	rec["updated_at"] = s.now().UTC()
	saved, err := s.store.UpdateByID(ctx, store.Breeds, id, rec)
	if err != nil {
		return catalog.Breed{}, persistence("update breeds", err)
	}
	return catalog.MapBreed(saved)
}

func (s *Service) DeleteBreed(ctx context.Context, id string) error {
	return persistence("delete breeds", s.store.DeleteByID(ctx, store.Breeds, id))
}

func breedRecord(in BreedInput) (store.Record, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &errs.ValidationError{Fields: []string{"name"}}
	}
	return store.Record{
		"name":        name,
		"description": nullable(in.Description),
	}, nil
}

// ---- testimonials ----

func (s *Service) CreateTestimonial(ctx context.Context, in TestimonialInput) (catalog.Testimonial, error) {
	rec, err := testimonialRecord(in)
	if err != nil {
		return catalog.Testimonial{}, err
	}
	rec["updated_at"] = s.now().UTC()
	saved, err := s.store.Insert(ctx, store.Testimonials, rec)
	if err != nil {
		return catalog.Testimonial{}, &errs.PersistenceError{Op: "insert testimonials", Err: err}
	}
	return catalog.MapTestimonial(saved)
}

func (s *Service) UpdateTestimonial(ctx context.Context, id string, in TestimonialInput) (catalog.Testimonial, error) {
	rec, err := testimonialRecord(in)
	if err != nil {
		return catalog.Testimonial{}, err
	}
	rec["updated_at"] = s.now().UTC()
	saved, err := s.store.UpdateByID(ctx, store.Testimonials, id, rec)
	if err != nil {
		return catalog.Testimonial{}, persistence("update testimonials", err)
	}
	return catalog.MapTestimonial(saved)
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	return persistence("delete testimonials", s.store.DeleteByID(ctx, store.Testimonials, id))
}

func testimonialRecord(in TestimonialInput) (store.Record, error) {
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	text := strings.TrimSpace(in.Text)

	var fields []string
	if err := errs.Missing(map[string]string{
		"name":     name,
		"location": location,
		"text":     text,
	}, "name", "location", "text"); err != nil {
		var ve *errs.ValidationError
		errors.As(err, &ve)
		fields = ve.Fields
	}
	if in.Rating < 1 || in.Rating > 5 {
		fields = append(fields, "rating")
	}
	if len(fields) > 0 {
		return nil, &errs.ValidationError{Fields: fields}
	}

	return store.Record{
		"name":        name,
		"location":    location,
		"rating":      in.Rating,
		"text":        text,
		"avatar":      nullable(in.Avatar),
		"kitten_name": nullable(in.KittenName),
	}, nil
}

// persistence deja pasar ErrNotFound y envuelve el resto. nil => nil.
func persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrNotFound) {
		return errs.ErrNotFound
	}
	return &errs.PersistenceError{Op: op, Err: err}
}

func nullable(s string) any {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return s
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
