package handler

import (
	"time"

	"budgetai/internal/domain/entity"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
)

// View types shape entities for JSON responses. They exist so internal fields
// such as password hashes never reach the wire.

type userView struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Role                string     `json:"role"`
	CompanyID           *uuid.UUID `json:"companyId,omitempty"`
	DepartmentID        *uuid.UUID `json:"departmentId,omitempty"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func newUserView(user *entity.User) *userView {
	return &userView{
		ID:                  user.ID,
		Email:               user.Email,
		Name:                user.Name,
		Role:                user.Role.String(),
		CompanyID:           user.CompanyID,
		DepartmentID:        user.DepartmentID,
		OnboardingCompleted: user.OnboardingCompleted,
		CreatedAt:           user.CreatedAt,
	}
}

type authView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         *userView `json:"user"`
}

func newAuthView(output *usecase.AuthOutput) *authView {
	return &authView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserView(output.User),
	}
}

type companyView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Industry  string    `json:"industry"`
	JoinCode  string    `json:"joinCode"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCompanyView(company *entity.Company) *companyView {
	return &companyView{
		ID:        company.ID,
		Name:      company.Name,
		Size:      string(company.Size),
		Industry:  string(company.Industry),
		JoinCode:  company.JoinCode,
		OwnerID:   company.OwnerID,
		CreatedAt: company.CreatedAt,
	}
}

type departmentView struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"companyId"`
	Name            string    `json:"name"`
	MonthlyBudget   float64   `json:"monthlyBudget"`
	CurrentSpent    float64   `json:"currentSpent"`
	RemainingBudget float64   `json:"remainingBudget"`
	EmployeeCount   int       `json:"employeeCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newDepartmentView(department *entity.Department) *departmentView {
	return &departmentView{
		ID:              department.ID,
		CompanyID:       department.CompanyID,
		Name:            department.Name,
		MonthlyBudget:   department.MonthlyBudget,
		CurrentSpent:    department.CurrentSpent,
		RemainingBudget: department.RemainingBudget(),
		EmployeeCount:   department.EmployeeCount,
		CreatedAt:       department.CreatedAt,
	}
}

func newDepartmentViews(departments []*entity.Department) []*departmentView {
	views := make([]*departmentView, len(departments))
	for i, department := range departments {
		views[i] = newDepartmentView(department)
	}

	return views
}

type requestView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	DepartmentID   uuid.UUID  `json:"departmentId"`
	Amount         float64    `json:"amount"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Justification  string     `json:"justification,omitempty"`
	Status         string     `json:"status"`
	DecisionReason string     `json:"decisionReason,omitempty"`
	SubmittedAt    time.Time  `json:"submittedAt"`
	ProcessedAt    *time.Time `json:"processedAt,omitempty"`
}

func newRequestView(request *entity.PurchaseRequest) *requestView {
	return &requestView{
		ID:             request.ID,
		UserID:         request.UserID,
		DepartmentID:   request.DepartmentID,
		Amount:         request.Amount,
		Description:    request.Description,
		Category:       request.Category,
		Justification:  request.Justification,
		Status:         request.Status.String(),
		DecisionReason: request.DecisionReason,
		SubmittedAt:    request.SubmittedAt,
		ProcessedAt:    request.ProcessedAt,
	}
}

func newRequestViews(requests []*entity.PurchaseRequest) []*requestView {
	views := make([]*requestView, len(requests))
	for i, request := range requests {
		views[i] = newRequestView(request)
	}

	return views
}

type submitRequestView struct {
	Request         *requestView `json:"request"`
	RemainingBudget float64      `json:"remainingBudget"`
}

type productView struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Seller         entity.Seller     `json:"seller"`
	Category       string            `json:"category"`
	InStock        bool              `json:"inStock"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func newProductView(product *entity.Product) *productView {
	return &productView{
		ID:             product.ID,
		Title:          product.Title,
		Description:    product.Description,
		Price:          product.Price,
		Currency:       string(product.Currency),
		Images:         product.Images,
		Rating:         product.Rating,
		ReviewCount:    product.ReviewCount,
		Seller:         product.Seller,
		Category:       product.Category,
		InStock:        product.InStock,
		Specifications: product.Specifications,
		CreatedAt:      product.CreatedAt,
	}
}

type productPageView struct {
	Items      []*productView `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

func newProductPageView(page *usecase.ProductPage) *productPageView {
	items := make([]*productView, len(page.Items))
	for i, product := range page.Items {
		items[i] = newProductView(product)
	}

	return &productPageView{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}

type orderItemView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Title     string    `json:"title"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

type orderView struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	Items           []orderItemView `json:"items"`
	Total           float64         `json:"total"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	ShippingAddress string          `json:"shippingAddress"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func newOrderView(order *entity.Order) *orderView {
	items := make([]orderItemView, len(order.Items))
	for i, item := range order.Items {
		items[i] = orderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &orderView{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Total:           order.Total,
		Currency:        string(order.Currency),
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		ShippingAddress: order.ShippingAddress,
		TrackingNumber:  order.TrackingNumber,
		CreatedAt:       order.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, len(orders))
	for i, order := range orders {
		views[i] = newOrderView(order)
	}

	return views
}

type chatMessageView struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatSessionView struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Messages  []chatMessageView `json:"messages,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func newChatSessionView(session *entity.ChatSession) *chatSessionView {
	messages := make([]chatMessageView, len(session.Messages))
	for i, message := range session.Messages {
		messages[i] = chatMessageView{
			ID:        message.ID,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		}
	}

	return &chatSessionView{
		ID:        session.ID,
		Title:     session.Title,
		Messages:  messages,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func newChatSessionViews(sessions []*entity.ChatSession) []*chatSessionView {
	views := make([]*chatSessionView, len(sessions))
	for i, session := range sessions {
		views[i] = newChatSessionView(session)
	}

	return views
}
