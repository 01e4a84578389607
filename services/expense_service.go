package services

import (
	"context"
	"fmt"
	"time"

	"finbot/dto"
	"finbot/errors"
	"finbot/models"
	"finbot/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const analyticsCacheTTL = 10 * time.Minute

// ExpenseService owns the per-user expense collection and its analytics.
type ExpenseService struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

type ExpenseServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewExpenseService(opts ExpenseServiceOptions) *ExpenseService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ExpenseService{
		DB:     opts.DB,
		Redis:  opts.Redis,
		Logger: l,
	}
}

// MonthWindow returns the half-open range [firstOfMonth, firstOfNextMonth)
// for a month number in the current year. There is no year parameter
// anywhere on the API, so cross-year queries resolve to the current year;
// that limitation is deliberate and lives only here.
func MonthWindow(month int, now time.Time) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidMonth, "Invalid month value", nil)
	}
	start := time.Date(now.Year(), time.Month(month), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}

// MonthName returns the short English month name ("Jan") for 1-12.
func MonthName(month int) string {
	return time.Month(month).String()[:3]
}

// Append records a new expense and drops the user's cached analytics.
func (s *ExpenseService) Append(expense *models.Expense) error {
	if expense.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be greater than zero", nil)
	}
	if err := s.DB.Create(expense).Error; err != nil {
		return err
	}

	s.invalidateAnalytics(expense.UserID)
	return nil
}

// AppendExtracted persists an expense produced by the chat extractor. The
// pattern can legitimately capture an amount of 0 ("paid 0 on nothing");
// such a match still answers the user but nothing is stored.
func (s *ExpenseService) AppendExtracted(userID uint, extracted *ExtractedExpense) error {
	if extracted.Amount <= 0 {
		s.Logger.Info("skipping zero-amount expense for user %d: %q", userID, extracted.Description)
		return nil
	}
	return s.Append(&models.Expense{
		UserID:      userID,
		Amount:      extracted.Amount,
		Category:    extracted.Category,
		Date:        extracted.Date,
		Description: extracted.Description,
	})
}

// ListForUser returns a user's expenses, newest first. A non-nil month
// scopes the result to that month's window in the current year.
func (s *ExpenseService) ListForUser(userID uint, month *int) ([]models.Expense, error) {
	query := s.DB.Where("user_id = ?", userID)

	if month != nil {
		start, end, err := MonthWindow(*month, time.Now())
		if err != nil {
			return nil, err
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var expenses []models.Expense
	err := query.Order("date desc").Find(&expenses).Error
	return expenses, err
}

// TopCategories sums a user's expenses per category, largest first,
// optionally scoped to one month of the current year.
func (s *ExpenseService) TopCategories(userID uint, month *int) ([]dto.CategoryTotal, error) {
	cacheKey := s.topCategoriesKey(userID, month)
	var cached []dto.CategoryTotal
	if s.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	query := s.DB.Model(&models.Expense{}).Where("user_id = ?", userID)
	if month != nil {
		start, end, err := MonthWindow(*month, time.Now())
		if err != nil {
			return nil, err
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var rows []dto.CategoryTotal
	err := query.Select("category, SUM(amount) as total").
		Group("category").
		Order("total desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	s.cacheSet(cacheKey, rows)
	return rows, nil
}

// MonthlySummary sums a user's expenses per calendar month, ascending by
// month number. Only months that actually carry expenses appear. The
// grouping runs in Go over the fetched rows, the month of each expense
// taken from its stored date.
func (s *ExpenseService) MonthlySummary(userID uint) ([]dto.MonthTotal, error) {
	cacheKey := fmt.Sprintf("analytics:monthly:%d", userID)
	var cached []dto.MonthTotal
	if s.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	var expenses []models.Expense
	if err := s.DB.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, expense := range expenses {
		totals[int(expense.Date.Month())] += expense.Amount
	}

	var rows []dto.MonthTotal
	for m := 1; m <= 12; m++ {
		if total, ok := totals[m]; ok {
			rows = append(rows, dto.MonthTotal{Month: MonthName(m), Total: total})
		}
	}

	s.cacheSet(cacheKey, rows)
	return rows, nil
}

// TotalForRange sums a user's expenses inside [start, end). Used by the
// nightly digest job.
func (s *ExpenseService) TotalForRange(userID uint, start, end time.Time) (float64, error) {
	var total float64
	err := s.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (s *ExpenseService) topCategoriesKey(userID uint, month *int) string {
	m := 0
	if month != nil {
		m = *month
	}
	return fmt.Sprintf("analytics:top:%d:%d", userID, m)
}

func (s *ExpenseService) cacheGet(key string, target interface{}) bool {
	if s.Redis == nil {
		return false
	}
	err := GetFromRedis(context.Background(), s.Redis, key, target)
	if err != nil {
		if err != redis.Nil {
			s.Logger.Error("analytics cache read %s: %v", key, err)
		}
		return false
	}
	return true
}

func (s *ExpenseService) cacheSet(key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	if err := SetToRedis(context.Background(), s.Redis, key, value, analyticsCacheTTL); err != nil {
		s.Logger.Error("analytics cache write %s: %v", key, err)
	}
}

func (s *ExpenseService) invalidateAnalytics(userID uint) {
	if s.Redis == nil {
		return
	}
	keys := []string{fmt.Sprintf("analytics:monthly:%d", userID)}
	for m := 0; m <= 12; m++ {
		keys = append(keys, fmt.Sprintf("analytics:top:%d:%d", userID, m))
	}
	if err := DeleteFromRedis(context.Background(), s.Redis, keys...); err != nil {
		s.Logger.Error("analytics cache invalidate for user %d: %v", userID, err)
	}
}
