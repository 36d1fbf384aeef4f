package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client

	CreateFunc   func(ctx context.Context, client *domain.Client) error
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Client, error)
	UpdateFunc   func(ctx context.Context, client *domain.Client) error
	DeleteTxFunc func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc     func(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	SearchFunc   func(ctx context.Context, query string, limit, offset int) ([]*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, id)
	return nil
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

func (m *MockClientRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Client, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) || strings.Contains(c.CPF, query) {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

// MockLoanRepository is a mock implementation of LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan

	CreateTxFunc           func(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdateFunc   func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error)
	UpdateStatusFunc       func(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus) error
	UpdateInstallmentsFunc func(ctx context.Context, tx usecase.Transaction, id string, installments int, installmentAmount decimal.Decimal) error
	ListFunc               func(ctx context.Context, limit, offset int) ([]*domain.Loan, error)
	ListByClientFunc       func(ctx context.Context, clientID string, limit, offset int) ([]*domain.Loan, error)
	ListByStatusFunc       func(ctx context.Context, status domain.LoanStatus, limit, offset int) ([]*domain.Loan, error)
	ListOpenFunc           func(ctx context.Context) ([]*domain.Loan, error)
	DeleteTxFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	DeleteByClientTxFunc   func(ctx context.Context, tx usecase.Transaction, clientID string) error
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		loans: make(map[string]*domain.Loan),
	}
}

func (m *MockLoanRepository) CreateTx(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.loans[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockLoanRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loans[id]; ok {
		l.Status = status
		return nil
	}
	return domain.ErrLoanNotFound
}

func (m *MockLoanRepository) UpdateInstallments(ctx context.Context, tx usecase.Transaction, id string, installments int, installmentAmount decimal.Decimal) error {
	if m.UpdateInstallmentsFunc != nil {
		return m.UpdateInstallmentsFunc(ctx, tx, id, installments, installmentAmount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loans[id]; ok {
		l.Installments = installments
		l.InstallmentAmount = installmentAmount
		return nil
	}
	return domain.ErrLoanNotFound
}

func (m *MockLoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.Loan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, l := range m.loans {
		loans = append(loans, l)
	}
	return loans, nil
}

func (m *MockLoanRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Loan, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, l := range m.loans {
		if l.ClientID == clientID {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus, limit, offset int) ([]*domain.Loan, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, l := range m.loans {
		if l.Status == status {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) ListOpen(ctx context.Context) ([]*domain.Loan, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, l := range m.loans {
		if l.Status != domain.LoanStatusCompleted {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.loans, id)
	return nil
}

func (m *MockLoanRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	if m.DeleteByClientTxFunc != nil {
		return m.DeleteByClientTxFunc(ctx, tx, clientID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.loans {
		if l.ClientID == clientID {
			delete(m.loans, id)
		}
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Payment, error)
	ListByLoanFunc       func(ctx context.Context, loanID string) ([]*domain.Payment, error)
	ListByLoanTxFunc     func(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Payment, error)
	SetReceiptIDTxFunc   func(ctx context.Context, tx usecase.Transaction, paymentID, receiptID string) error
	DeleteByLoanTxFunc   func(ctx context.Context, tx usecase.Transaction, loanID string) error
	DeleteByClientTxFunc func(ctx context.Context, tx usecase.Transaction, clientID string) error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) CreateTx(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var payments []*domain.Payment
	for _, p := range m.payments {
		if p.LoanID == loanID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (m *MockPaymentRepository) ListByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Payment, error) {
	if m.ListByLoanTxFunc != nil {
		return m.ListByLoanTxFunc(ctx, tx, loanID)
	}
	return m.ListByLoan(ctx, loanID)
}

func (m *MockPaymentRepository) SetReceiptIDTx(ctx context.Context, tx usecase.Transaction, paymentID, receiptID string) error {
	if m.SetReceiptIDTxFunc != nil {
		return m.SetReceiptIDTxFunc(ctx, tx, paymentID, receiptID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[paymentID]; ok {
		p.ReceiptID = &receiptID
		return nil
	}
	return domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) DeleteByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) error {
	if m.DeleteByLoanTxFunc != nil {
		return m.DeleteByLoanTxFunc(ctx, tx, loanID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.payments {
		if p.LoanID == loanID {
			delete(m.payments, id)
		}
	}
	return nil
}

func (m *MockPaymentRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	if m.DeleteByClientTxFunc != nil {
		return m.DeleteByClientTxFunc(ctx, tx, clientID)
	}
	return nil
}

// MockReceiptRepository is a mock implementation of ReceiptRepository.
type MockReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt
	seq      int64

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, receipt *domain.Receipt) error
	NextNumberFunc       func(ctx context.Context, tx usecase.Transaction) (int64, error)
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Receipt, error)
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Receipt, error)
	ListByClientFunc     func(ctx context.Context, clientID string, limit, offset int) ([]*domain.Receipt, error)
	ListByLoanFunc       func(ctx context.Context, loanID string) ([]*domain.Receipt, error)
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
	DeleteByLoanTxFunc   func(ctx context.Context, tx usecase.Transaction, loanID string) error
	DeleteByClientTxFunc func(ctx context.Context, tx usecase.Transaction, clientID string) error
}

func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{
		receipts: make(map[string]*domain.Receipt),
		seq:      999, // first NextNumber call returns 1000
	}
}

func (m *MockReceiptRepository) CreateTx(ctx context.Context, tx usecase.Transaction, receipt *domain.Receipt) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, receipt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[receipt.ID] = receipt
	return nil
}

func (m *MockReceiptRepository) NextNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.seq, nil
}

func (m *MockReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.receipts[id]; ok {
		return r, nil
	}
	return nil, domain.ErrReceiptNotFound
}

func (m *MockReceiptRepository) List(ctx context.Context, limit, offset int) ([]*domain.Receipt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var receipts []*domain.Receipt
	for _, r := range m.receipts {
		receipts = append(receipts, r)
	}
	return receipts, nil
}

func (m *MockReceiptRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.Receipt, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var receipts []*domain.Receipt
	for _, r := range m.receipts {
		if r.ClientID == clientID {
			receipts = append(receipts, r)
		}
	}
	return receipts, nil
}

func (m *MockReceiptRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Receipt, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var receipts []*domain.Receipt
	for _, r := range m.receipts {
		if r.LoanID == loanID {
			receipts = append(receipts, r)
		}
	}
	return receipts, nil
}

func (m *MockReceiptRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.receipts, id)
	return nil
}

func (m *MockReceiptRepository) DeleteByLoanTx(ctx context.Context, tx usecase.Transaction, loanID string) error {
	if m.DeleteByLoanTxFunc != nil {
		return m.DeleteByLoanTxFunc(ctx, tx, loanID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.receipts {
		if r.LoanID == loanID {
			delete(m.receipts, id)
		}
	}
	return nil
}

func (m *MockReceiptRepository) DeleteByClientTx(ctx context.Context, tx usecase.Transaction, clientID string) error {
	if m.DeleteByClientTxFunc != nil {
		return m.DeleteByClientTxFunc(ctx, tx, clientID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.receipts {
		if r.ClientID == clientID {
			delete(m.receipts, id)
		}
	}
	return nil
}

// MockPixKeyRepository is a mock implementation of PixKeyRepository.
type MockPixKeyRepository struct {
	mu   sync.RWMutex
	keys map[string]*domain.PixKey

	CreateFunc  func(ctx context.Context, key *domain.PixKey) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.PixKey, error)
	UpdateFunc  func(ctx context.Context, key *domain.PixKey) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.PixKey, error)
}

func NewMockPixKeyRepository() *MockPixKeyRepository {
	return &MockPixKeyRepository{
		keys: make(map[string]*domain.PixKey),
	}
}

func (m *MockPixKeyRepository) Create(ctx context.Context, key *domain.PixKey) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key.ID] = key
	return nil
}

func (m *MockPixKeyRepository) GetByID(ctx context.Context, id string) (*domain.PixKey, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if k, ok := m.keys[id]; ok {
		return k, nil
	}
	return nil, domain.ErrPixKeyNotFound
}

func (m *MockPixKeyRepository) Update(ctx context.Context, key *domain.PixKey) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[key.ID]; !ok {
		return domain.ErrPixKeyNotFound
	}
	m.keys[key.ID] = key
	return nil
}

func (m *MockPixKeyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, id)
	return nil
}

func (m *MockPixKeyRepository) List(ctx context.Context, limit, offset int) ([]*domain.PixKey, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []*domain.PixKey
	for _, k := range m.keys {
		keys = append(keys, k)
	}
	return keys, nil
}

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	DashboardStatsFunc func(ctx context.Context) (*domain.DashboardStats, error)
	LoanReportFunc     func(ctx context.Context, filter domain.ReportFilter) (*domain.LoanReport, error)
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

func (m *MockReportRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc(ctx)
	}
	return &domain.DashboardStats{}, nil
}

func (m *MockReportRepository) LoanReport(ctx context.Context, filter domain.ReportFilter) (*domain.LoanReport, error) {
	if m.LoanReportFunc != nil {
		return m.LoanReportFunc(ctx, filter)
	}
	return &domain.LoanReport{}, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	Events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.Events {
		if !e.Published {
			events = append(events, e)
		}
		if len(events) == limit {
			break
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	return nil
}

// EventTypes returns the recorded event types in order.
func (m *MockOutboxRepository) EventTypes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var types []string
	for _, e := range m.Events {
		types = append(types, e.EventType)
	}
	return types
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// once with no backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
