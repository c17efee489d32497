package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

// BlobStore — ที่เก็บรูป preview (S3 ใน prod, fake ใน test)
type BlobStore interface {
	UploadBase64(ctx context.Context, dataURL, entityName string) (string, error)
	DeleteByLinks(ctx context.Context, links []string) error
}

// CacheInvalidator ให้ write path ของ catalog แจ้ง read path ว่าข้อมูลเปลี่ยน
type CacheInvalidator interface {
	InvalidateRestaurant(ctx context.Context, id uint)
}

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	DishRepo *repository.DishRepository
	LikeRepo *repository.LikeRepository
	Blob     BlobStore
	Cache    CacheInvalidator // optional
}

func NewRestaurantService(
	db *gorm.DB,
	repo *repository.RestaurantRepository,
	dishRepo *repository.DishRepository,
	likeRepo *repository.LikeRepository,
	blob BlobStore,
) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, DishRepo: dishRepo, LikeRepo: likeRepo, Blob: blob}
}

// ----- DTOs from Controller -----

type DishIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	PreviewLink string          `json:"previewLink" binding:"required"`
	Cost        decimal.Decimal `json:"cost" binding:"required"`
}

type CreateRestaurantReq struct {
	Restaurant struct {
		Type        string `json:"type" binding:"required"`
		Address     string `json:"address" binding:"required"`
		Name        string `json:"name" binding:"required"`
		PreviewLink string `json:"previewLink" binding:"required"`
	} `json:"restaurant" binding:"required"`
	Dishes []DishIn `json:"dishes" binding:"omitempty,dive"`
}

// RestaurantFieldsIn — field ที่ client แก้ได้; likes ไม่อยู่ในนี้โดยตั้งใจ
type RestaurantFieldsIn struct {
	Type        *string `json:"type"`
	Address     *string `json:"address"`
	Name        *string `json:"name"`
	PreviewLink *string `json:"previewLink"`
}

func (f *RestaurantFieldsIn) toUpdates() map[string]any {
	updates := map[string]any{}
	if f == nil {
		return updates
	}
	if f.Type != nil {
		updates["type"] = *f.Type
	}
	if f.Address != nil {
		updates["address"] = *f.Address
	}
	if f.Name != nil {
		updates["name"] = *f.Name
	}
	if f.PreviewLink != nil {
		updates["preview_link"] = *f.PreviewLink
	}
	return updates
}

// Create สร้างร้าน + เมนูชุดแรก รูปส่งมาเป็น base64 อัปขึ้น blob ก่อน insert
func (s *RestaurantService) Create(ctx context.Context, req *CreateRestaurantReq) (uint, error) {
	restLink, err := s.Blob.UploadBase64(ctx, req.Restaurant.PreviewLink, req.Restaurant.Name)
	if err != nil {
		return 0, err
	}

	dishLinks := make([]string, len(req.Dishes))
	for i, d := range req.Dishes {
		link, err := s.Blob.UploadBase64(ctx, d.PreviewLink, d.Name)
		if err != nil {
			return 0, err
		}
		dishLinks[i] = link
	}

	rest := entity.Restaurant{
		Type:        req.Restaurant.Type,
		Address:     req.Restaurant.Address,
		Name:        req.Restaurant.Name,
		PreviewLink: restLink,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &rest); err != nil {
			return err
		}
		dishes := make([]entity.Dish, len(req.Dishes))
		for i, d := range req.Dishes {
			dishes[i] = entity.Dish{
				Name:         d.Name,
				Description:  d.Description,
				PreviewLink:  dishLinks[i],
				Cost:         d.Cost,
				RestaurantID: rest.ID,
			}
		}
		return s.DishRepo.CreateBatch(tx, dishes)
	})
	if err != nil {
		return 0, err
	}
	return rest.ID, nil
}

func (s *RestaurantService) Update(ctx context.Context, id uint, fields *RestaurantFieldsIn) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Restaurant"}
		}
		return err
	}
	updates := fields.toUpdates()
	if len(updates) == 0 {
		return nil
	}
	if err := s.Repo.UpdateFields(id, updates); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ToggleLike สลับสถานะไลก์ของ user กับร้าน ใน transaction เดียว
// แถว membership คือจุด serialize: ลบก่อนแล้วดู RowsAffected —
// toggle ซ้อนกันจาก user เดียวกันไม่มีทาง increment/decrement ซ้ำ
// (insert ชน PK จะ rollback ทั้งก้อน) และ counter ขยับด้วย expression
// ใน DB ไม่ใช่ค่าจาก client; field อื่นที่ส่งมา merge ผ่าน whitelist
func (s *RestaurantService) ToggleLike(ctx context.Context, userID, restaurantID uint, fields *RestaurantFieldsIn) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.Repo.ExistsTx(tx, restaurantID); err != nil {
			return err
		} else if !ok {
			return &NotFoundError{Entity: "Restaurant"}
		}

		removed, err := s.LikeRepo.DeleteReporting(tx, userID, restaurantID)
		if err != nil {
			return err
		}

		updates := fields.toUpdates()
		if removed {
			updates["likes"] = gorm.Expr("likes - 1")
		} else {
			if err := s.LikeRepo.Create(tx, userID, restaurantID); err != nil {
				return err
			}
			updates["likes"] = gorm.Expr("likes + 1")
		}

		return tx.Model(&entity.Restaurant{}).Where("id = ?", restaurantID).Updates(updates).Error
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, restaurantID)
	return nil
}

// Delete ลบร้านทั้งก้อน: รูปบน blob (best effort), likes, เมนู, แถวร้าน
// blob พังไม่บล็อกการลบแถว — คืน warning ให้ caller แยกจากผลหลัก
func (s *RestaurantService) Delete(ctx context.Context, id uint) (warning string, err error) {
	rest, err := s.Repo.FindByIDWithDishes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "Restaurant"}
		}
		return "", err
	}

	links := make([]string, 0, len(rest.Dishes)+1)
	links = append(links, rest.PreviewLink)
	for _, d := range rest.Dishes {
		links = append(links, d.PreviewLink)
	}
	if blobErr := s.Blob.DeleteByLinks(ctx, links); blobErr != nil {
		warning = "preview cleanup failed: " + blobErr.Error()
		logrus.WithError(blobErr).WithField("restaurantId", id).Warn("blob deletion failed")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.LikeRepo.DeleteByRestaurant(tx, id); err != nil {
			return err
		}
		if err := s.DishRepo.DeleteByRestaurant(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return warning, err
	}
	s.invalidate(ctx, id)
	return warning, nil
}

// List — ร้านทั้งหมดพร้อมเมนูและ isLiked ของ user ที่ขอ
func (s *RestaurantService) List(ctx context.Context, userID uint) ([]repository.RestaurantWithLiked, error) {
	rests, err := s.Repo.ListWithLiked(userID)
	if err != nil {
		return nil, err
	}

	var dishes []entity.Dish
	if err := s.DB.WithContext(ctx).Find(&dishes).Error; err != nil {
		return nil, err
	}
	byRestaurant := make(map[uint][]entity.Dish, len(rests))
	for _, d := range dishes {
		byRestaurant[d.RestaurantID] = append(byRestaurant[d.RestaurantID], d)
	}
	for i := range rests {
		rests[i].Dishes = byRestaurant[rests[i].ID]
	}
	return rests, nil
}

func (s *RestaurantService) invalidate(ctx context.Context, id uint) {
	if s.Cache != nil {
		s.Cache.InvalidateRestaurant(ctx, id)
	}
}
