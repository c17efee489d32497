package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DishRepo *repository.DishRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, RestRepo: restRepo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type OrderedDishIn struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name"`
	// nil = ไม่ได้ระบุ → คิดเป็น 1 จาน; ศูนย์คือศูนย์จริงๆ
	Amount *int `json:"amount" binding:"omitempty,min=0"`
}

type PlaceOrderReq struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	Dishes       []OrderedDishIn `json:"dishes" binding:"required,min=1,dive"`
	// ไม่ binding required — total ศูนย์เป็นค่าที่ถูกต้อง (ทุกจาน amount 0)
	TotalCost decimal.Decimal `json:"totalCost"`
}

// PlaceOrder ตรวจ cart กับ catalog ราคาจริง แล้วบันทึก order + line items
// ทั้งหมดใน transaction เดียว — ราคาอ่านใหม่ใน tx กันแข่งกับการแก้ราคา
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, req *PlaceOrderReq) (uint, error) {
	if len(req.Dishes) == 0 {
		return 0, ErrEmptyOrder
	}

	// id ซ้ำใน request ยุบเหลือตัวท้ายสุด แต่ลำดับที่เจอครั้งแรกยังใช้ไล่หา dish ที่หาย
	orderedIDs := make([]uint, 0, len(req.Dishes))
	amounts := make(map[uint]*int, len(req.Dishes))
	names := make(map[uint]string, len(req.Dishes))
	for _, d := range req.Dishes {
		if _, seen := amounts[d.ID]; !seen {
			orderedIDs = append(orderedIDs, d.ID)
		}
		amounts[d.ID] = d.Amount
		names[d.ID] = d.Name
	}

	var orderID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dishes, err := s.DishRepo.FindByIDsTx(tx, orderedIDs)
		if err != nil {
			return err
		}

		found := make(map[uint]entity.Dish, len(dishes))
		for _, d := range dishes {
			found[d.ID] = d
		}
		for _, id := range orderedIDs {
			if _, ok := found[id]; !ok {
				name := names[id]
				if name == "" {
					name = strconv.FormatUint(uint64(id), 10)
				}
				return &NotFoundError{Entity: "Dish", Name: name}
			}
		}

		total := decimal.Zero
		items := make([]entity.DishInOrder, 0, len(orderedIDs))
		for _, id := range orderedIDs {
			amount := 1
			if a := amounts[id]; a != nil {
				amount = *a
			}
			total = total.Add(found[id].Cost.Mul(decimal.NewFromInt(int64(amount))))
			items = append(items, entity.DishInOrder{DishID: id, Amount: amount})
		}

		// เทียบแบบ exact — ห่างกันสตางค์เดียวก็ไม่ผ่าน
		if !total.Equal(req.TotalCost) {
			return ErrPriceMismatch
		}

		if ok, err := s.RestRepo.ExistsTx(tx, req.RestaurantID); err != nil {
			return err
		} else if !ok {
			return &NotFoundError{Entity: "Restaurant"}
		}
		if ok, err := s.UserRepo.ExistsTx(tx, userID); err != nil {
			return err
		} else if !ok {
			return &NotFoundError{Entity: "User"}
		}

		order := entity.Order{
			UserID:       userID,
			RestaurantID: req.RestaurantID,
			TotalCost:    total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.Repo.CreateLineItems(tx, items); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	db := s.DB.WithContext(ctx)
	if _, err := s.Repo.FindByID(db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Order"}
		}
		return err
	}
	return s.Repo.Delete(db, id)
}

// LineItems — ใช้ดูรายละเอียด order
func (s *OrderService) LineItems(ctx context.Context, orderID uint) ([]entity.DishInOrder, error) {
	return s.Repo.GetLineItems(s.DB.WithContext(ctx), orderID)
}
