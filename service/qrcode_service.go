package service

import (
	"context"
	"fmt"
	"wedding-api/model"
	"wedding-api/repository"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// QRCodeService stores target URLs and renders them as PNG images.
type QRCodeService struct {
	repo      repository.ISiteRepository
	imagePath string
}

// NewQRCodeService builds image links as imagePath + "/{id}/image".
func NewQRCodeService(repo repository.ISiteRepository, imagePath string) *QRCodeService {
	return &QRCodeService{repo: repo, imagePath: imagePath}
}

func (s *QRCodeService) withImage(q *model.QRCode) *model.QRCode {
	q.ImageURL = fmt.Sprintf("%s/%d/image", s.imagePath, q.ID)
	return q
}

func (s *QRCodeService) List(ctx context.Context) ([]model.QRCode, error) {
	codes, err := s.repo.ListQRCodes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range codes {
		s.withImage(&codes[i])
	}
	return codes, nil
}

func (s *QRCodeService) Get(ctx context.Context, id int64) (*model.QRCode, error) {
	q, err := s.repo.GetQRCode(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withImage(q), nil
}

func (s *QRCodeService) Create(ctx context.Context, req model.QRCodeRequest) (*model.QRCode, error) {
	q := &model.QRCode{URL: req.URL}
	if err := s.repo.CreateQRCode(ctx, q); err != nil {
		return nil, err
	}
	return s.withImage(q), nil
}

func (s *QRCodeService) Update(ctx context.Context, id int64, req model.QRCodeRequest) (*model.QRCode, error) {
	q := &model.QRCode{ID: id, URL: req.URL}
	if err := s.repo.UpdateQRCode(ctx, q); err != nil {
		return nil, err
	}
	return s.withImage(q), nil
}

func (s *QRCodeService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteQRCode(ctx, id)
}

// Image renders the stored URL as a PNG.
func (s *QRCodeService) Image(ctx context.Context, id int64) ([]byte, error) {
	q, err := s.repo.GetQRCode(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderQRCode(q.URL)
}

func RenderQRCode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("could not render qr code: %w", err)
	}
	return png, nil
}
