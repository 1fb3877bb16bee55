package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
)

type fakeLeaseRepo struct {
	mu     sync.Mutex
	leases map[string]*domain.Lease
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: map[string]*domain.Lease{}}
}

func (f *fakeLeaseRepo) Create(_ context.Context, lease *domain.Lease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lease.ID = uuid.NewString()
	lease.CreatedAt = time.Now()
	lease.UpdatedAt = lease.CreatedAt
	copied := *lease
	f.leases[lease.ID] = &copied
	return nil
}

func (f *fakeLeaseRepo) Update(_ context.Context, lease *domain.Lease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.leases[lease.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *lease
	copied.UpdatedAt = time.Now()
	f.leases[lease.ID] = &copied
	return nil
}

func (f *fakeLeaseRepo) GetByID(_ context.Context, id string) (*domain.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lease, ok := f.leases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *lease
	return &copied, nil
}

func (f *fakeLeaseRepo) CurrentForTenant(_ context.Context, tenantID string) (*domain.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *domain.Lease
	for _, lease := range f.leases {
		if lease.TenantID != tenantID || !lease.IsActive {
			continue
		}
		if latest == nil || lease.CreatedAt.After(latest.CreatedAt) {
			latest = lease
		}
	}
	if latest == nil {
		return nil, pgx.ErrNoRows
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeLeaseRepo) ListByLandlord(_ context.Context, landlordID string) ([]repository.LeaseWithTenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.LeaseWithTenant
	for _, lease := range f.leases {
		if lease.LandlordID == landlordID {
			result = append(result, repository.LeaseWithTenant{Lease: *lease})
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.User
	for _, user := range f.users {
		if user.Role == role {
			result = append(result, *user)
		}
	}
	return result, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []domain.RentPayment
	overview []repository.RentOverviewRow
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.RentPayment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment.ID = uuid.NewString()
	payment.PaidAt = time.Now()
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) ListForPeriod(_ context.Context, leaseID string, month, year int) ([]domain.RentPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.RentPayment
	for _, payment := range f.payments {
		if payment.LeaseID == leaseID && payment.Month == month && payment.Year == year {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) ListRecentByTenant(_ context.Context, _ string, _ int) ([]domain.RentPayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RentPayment(nil), f.payments...), nil
}

func (f *fakePaymentRepo) ListRecentByLandlord(_ context.Context, _ string, _ int) ([]repository.PaymentWithTenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.PaymentWithTenant
	for _, payment := range f.payments {
		result = append(result, repository.PaymentWithTenant{RentPayment: payment})
	}
	return result, nil
}

func (f *fakePaymentRepo) OverviewByLandlord(_ context.Context, _ string, _, _ int) ([]repository.RentOverviewRow, error) {
	return f.overview, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.RentOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.RentOrder{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.RentOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	copied := *order
	f.orders[order.ProviderOrderID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetByProviderOrderID(_ context.Context, providerOrderID string) (*domain.RentOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[providerOrderID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, providerOrderID string) error {
	return f.markStatus(providerOrderID, domain.RentOrderStatusPaid)
}

func (f *fakeOrderRepo) MarkFailed(ctx context.Context, providerOrderID string) error {
	return f.markStatus(providerOrderID, domain.RentOrderStatusFailed)
}

func (f *fakeOrderRepo) markStatus(providerOrderID string, status domain.RentOrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[providerOrderID]
	if !ok || order.Status != domain.RentOrderStatusPending {
		return pgx.ErrNoRows
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

type fakeRequestRepo struct {
	mu               sync.Mutex
	requests         map[string]*domain.MaintenanceRequest
	landlordByTenant map[string]string
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		requests:         map[string]*domain.MaintenanceRequest{},
		landlordByTenant: map[string]string{},
	}
}

func (f *fakeRequestRepo) Create(_ context.Context, request *domain.MaintenanceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	copied := *request
	f.requests[request.ID] = &copied
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (*domain.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) GetForLandlord(_ context.Context, id, landlordID string) (*domain.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok || f.landlordByTenant[request.TenantID] != landlordID {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) ListByTenant(_ context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.MaintenanceRequest
	for _, request := range f.requests {
		if request.TenantID == tenantID {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepo) ListByLandlord(_ context.Context, landlordID string) ([]repository.RequestWithTenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.RequestWithTenant
	for _, request := range f.requests {
		if f.landlordByTenant[request.TenantID] == landlordID {
			result = append(result, repository.RequestWithTenant{MaintenanceRequest: *request})
		}
	}
	return result, nil
}

func (f *fakeRequestRepo) CountOpenByLandlord(_ context.Context, landlordID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, request := range f.requests {
		if f.landlordByTenant[request.TenantID] == landlordID && request.Status == domain.RequestStatusOpen {
			count++
		}
	}
	return count, nil
}

type fakeAttachmentRepo struct {
	mu          sync.Mutex
	attachments []domain.RequestAttachment
}

func (f *fakeAttachmentRepo) Create(_ context.Context, attachment *domain.RequestAttachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	attachment.ID = uuid.NewString()
	attachment.CreatedAt = time.Now()
	f.attachments = append(f.attachments, *attachment)
	return nil
}

func (f *fakeAttachmentRepo) ListByRequest(_ context.Context, requestID string) ([]domain.RequestAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.RequestAttachment
	for _, attachment := range f.attachments {
		if attachment.RequestID == requestID {
			result = append(result, attachment)
		}
	}
	return result, nil
}

type fakeAnnouncementRepo struct {
	mu            sync.Mutex
	announcements map[string]*domain.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{announcements: map[string]*domain.Announcement{}}
}

func (f *fakeAnnouncementRepo) Create(_ context.Context, announcement *domain.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	announcement.ID = uuid.NewString()
	announcement.CreatedAt = time.Now()
	announcement.UpdatedAt = announcement.CreatedAt
	copied := *announcement
	f.announcements[announcement.ID] = &copied
	return nil
}

func (f *fakeAnnouncementRepo) Update(_ context.Context, announcement *domain.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.announcements[announcement.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *announcement
	f.announcements[announcement.ID] = &copied
	return nil
}

func (f *fakeAnnouncementRepo) GetByID(_ context.Context, id string) (*domain.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	announcement, ok := f.announcements[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *announcement
	return &copied, nil
}

func (f *fakeAnnouncementRepo) ListByLandlord(_ context.Context, landlordID string) ([]domain.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Announcement
	for _, announcement := range f.announcements {
		if announcement.LandlordID == landlordID {
			result = append(result, *announcement)
		}
	}
	return result, nil
}

func (f *fakeAnnouncementRepo) ListVisibleByLandlord(_ context.Context, landlordID string) ([]domain.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var result []domain.Announcement
	for _, announcement := range f.announcements {
		if announcement.LandlordID == landlordID && announcement.VisibleAt(now) {
			result = append(result, *announcement)
		}
	}
	return result, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.events...)
}
