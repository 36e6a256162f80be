package service

import (
	"fmt"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/google/uuid"
)

type OrderService struct {
	repo         *repository.OrderRepository
	hornTypeRepo *repository.HornTypeRepository
}

func NewOrderService(repo *repository.OrderRepository, hornTypeRepo *repository.HornTypeRepository) *OrderService {
	return &OrderService{repo: repo, hornTypeRepo: hornTypeRepo}
}

type LineItemRequest struct {
	HornTypeID string `json:"horn_type_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	OrderNumber  string            `json:"order_number" binding:"required"`
	CustomerName string            `json:"customer_name" binding:"required"`
	OrderDate    *time.Time        `json:"order_date"`
	Deadline     time.Time         `json:"deadline" binding:"required"`
	Notes        string            `json:"notes"`
	LineItems    []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
}

func (s *OrderService) Create(req CreateOrderRequest) (*entity.Order, error) {
	if err := s.checkHornTypes(req.LineItems); err != nil {
		return nil, err
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	orderID := uuid.New().String()
	items := make([]entity.OrderLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, entity.OrderLineItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			HornTypeID: li.HornTypeID,
			Quantity:   li.Quantity,
		})
	}

	o := &entity.Order{
		ID:           orderID,
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		OrderDate:    orderDate,
		Deadline:     req.Deadline,
		Status:       entity.OrderStatusPending,
		Notes:        req.Notes,
		LineItems:    items,
	}
	if err := s.repo.Create(o); err != nil {
		return nil, fmt.Errorf("创建订单失败: %w", err)
	}
	return o, nil
}

type UpdateOrderRequest struct {
	CustomerName *string           `json:"customer_name"`
	Deadline     *time.Time        `json:"deadline"`
	Status       *string           `json:"status"`
	Notes        *string           `json:"notes"`
	LineItems    []LineItemRequest `json:"line_items"`
}

func (s *OrderService) Update(id string, req UpdateOrderRequest) (*entity.Order, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("订单不存在: %w", err)
	}

	if req.CustomerName != nil {
		o.CustomerName = *req.CustomerName
	}
	if req.Deadline != nil {
		o.Deadline = *req.Deadline
	}
	if req.Status != nil {
		switch *req.Status {
		case entity.OrderStatusPending, entity.OrderStatusInProgress,
			entity.OrderStatusCompleted, entity.OrderStatusCancelled:
			o.Status = *req.Status
		default:
			return nil, fmt.Errorf("非法的订单状态: %s", *req.Status)
		}
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	if req.LineItems != nil {
		if err := s.checkHornTypes(req.LineItems); err != nil {
			return nil, err
		}
		items := make([]entity.OrderLineItem, 0, len(req.LineItems))
		for _, li := range req.LineItems {
			items = append(items, entity.OrderLineItem{
				ID:         uuid.New().String(),
				OrderID:    o.ID,
				HornTypeID: li.HornTypeID,
				Quantity:   li.Quantity,
			})
		}
		if err := s.repo.ReplaceLineItems(o.ID, items); err != nil {
			return nil, fmt.Errorf("更新订购行失败: %w", err)
		}
		o.LineItems = nil
	}

	if err := s.repo.Update(o); err != nil {
		return nil, fmt.Errorf("更新订单失败: %w", err)
	}
	return s.repo.GetByID(id)
}

func (s *OrderService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *OrderService) GetByID(id string) (*entity.Order, error) {
	return s.repo.GetByID(id)
}

func (s *OrderService) List(params repository.OrderListParams) ([]entity.Order, int64, error) {
	return s.repo.List(params)
}

func (s *OrderService) checkHornTypes(items []LineItemRequest) error {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, li := range items {
		if !seen[li.HornTypeID] {
			seen[li.HornTypeID] = true
			ids = append(ids, li.HornTypeID)
		}
	}
	types, err := s.hornTypeRepo.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("读取型号失败: %w", err)
	}
	if len(types) != len(ids) {
		return fmt.Errorf("订购行引用了不存在的型号")
	}
	return nil
}
