// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/timesheet-tracker/backend/internal/application/usecase/auth"
	"github.com/timesheet-tracker/backend/internal/application/usecase/entry"
	"github.com/timesheet-tracker/backend/internal/application/usecase/week"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	"github.com/timesheet-tracker/backend/internal/infra/server/router"
	"github.com/timesheet-tracker/backend/internal/integration/adapters"
	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/timesheet-tracker/backend/internal/integration/persistence"
	"github.com/timesheet-tracker/backend/internal/integration/persistence/model"
	"github.com/timesheet-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	refreshToken   string
	currentUserID  uuid.UUID
	currentWeekID  uuid.UUID
	currentEntryID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("timesheet_tracker", map[string]any{
			"users":             &model.UserModel{},
			"refresh_tokens":    &model.RefreshTokenModel{},
			"weeks":             &model.WeekModel{},
			"timesheet_entries": &model.TimesheetEntryModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)

	// Week setup steps
	ctx.Given(`^a week exists with number (\d+) starting "([^"]*)"$`, test.aWeekExistsWithNumberStarting)
	ctx.Given(`^a week exists with number (\d+) starting "([^"]*)" for "([^"]*)"$`, test.aWeekExistsWithNumberStartingFor)

	// Entry setup steps
	ctx.Given(`^an entry exists with (\d+) hours on "([^"]*)"$`, test.anEntryExistsWithHoursOn)
	ctx.Given(`^the week has entries totaling (\d+) hours$`, test.theWeekHasEntriesTotalingHours)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentWeekID = uuid.Nil
	t.currentEntryID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			weekRepo := persistence.NewWeekRepository(testDB.DbConn)
			entryRepo := persistence.NewEntryRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

			// Create auth use cases
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create week use cases
			listWeeksUseCase := week.NewListWeeksUseCase(weekRepo)
			getWeekUseCase := week.NewGetWeekUseCase(weekRepo, entryRepo)
			createWeekUseCase := week.NewCreateWeekUseCase(weekRepo)
			overrideWeekUseCase := week.NewOverrideWeekUseCase(weekRepo)

			// Create timesheet entry use cases
			listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo, weekRepo)
			getEntryUseCase := entry.NewGetEntryUseCase(entryRepo, weekRepo)
			createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, weekRepo)
			updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo, weekRepo)
			deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, weekRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			weekController := controller.NewWeekController(
				listWeeksUseCase,
				getWeekUseCase,
				createWeekUseCase,
				overrideWeekUseCase,
			)

			entryController := controller.NewEntryController(
				listEntriesUseCase,
				getEntryUseCase,
				createEntryUseCase,
				updateEntryUseCase,
				deleteEntryUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(healthController, authController, weekController, entryController, loginRateLimiter, authMiddleware)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return nil
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User " + email,
		PasswordHash: hashPassword("SecurePass123!"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

// issueTokensFor generates an access/refresh token pair for the user and
// persists the refresh token, matching what the login endpoint produces.
func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "timesheet-tracker",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "timesheet-tracker",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", userID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// aWeekExistsWithNumberStarting creates a Monday-to-Friday week for the
// current user with derived fields at their initial values.
func (t *testContext) aWeekExistsWithNumberStarting(weekNumber int, startDate string) error {
	return t.createWeek(weekNumber, startDate, t.currentUserID)
}

// aWeekExistsWithNumberStartingFor creates a week owned by the user with the
// given email.
func (t *testContext) aWeekExistsWithNumberStartingFor(weekNumber int, startDate, email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	return t.createWeek(weekNumber, startDate, userModel.ID)
}

func (t *testContext) createWeek(weekNumber int, startDate string, userID uuid.UUID) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}

	weekID := uuid.New()
	t.currentWeekID = weekID

	now := time.Now().UTC()
	weekModel := &model.WeekModel{
		ID:         weekID,
		WeekNumber: weekNumber,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 4),
		Status:     string(entity.WeekStatusMissing),
		TotalHours: 0,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(weekModel)
	return result.Error
}

// anEntryExistsWithHoursOn inserts an entry into the current week and brings
// the week's total and status in line, the same pair the write path keeps.
func (t *testContext) anEntryExistsWithHoursOn(hours int, date string) error {
	entryDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	entryID := uuid.New()
	t.currentEntryID = entryID

	now := time.Now().UTC()
	entryModel := &model.TimesheetEntryModel{
		ID:          entryID,
		WeekID:      t.currentWeekID,
		Date:        entryDate,
		ProjectName: "Project A",
		TypeOfWork:  "Development",
		Hours:       hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.db.DbConn.Create(entryModel).Error; err != nil {
		return err
	}

	return t.recalculateWeekTotals()
}

// theWeekHasEntriesTotalingHours fills the current week with 8-hour entries
// (plus a remainder entry) until the requested total is reached.
func (t *testContext) theWeekHasEntriesTotalingHours(total int) error {
	var weekModel model.WeekModel
	if err := t.db.DbConn.First(&weekModel, "id = ?", t.currentWeekID).Error; err != nil {
		return fmt.Errorf("week not found: %w", err)
	}

	remaining := total
	day := 0
	for remaining > 0 {
		hours := 8
		if remaining < 8 {
			hours = remaining
		}
		date := weekModel.StartDate.AddDate(0, 0, day%5)
		if err := t.anEntryExistsWithHoursOn(hours, date.Format("2006-01-02")); err != nil {
			return err
		}
		remaining -= hours
		day++
	}

	return nil
}

func (t *testContext) recalculateWeekTotals() error {
	var total int
	if err := t.db.DbConn.
		Model(&model.TimesheetEntryModel{}).
		Where("week_id = ?", t.currentWeekID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error; err != nil {
		return err
	}

	return t.db.DbConn.
		Model(&model.WeekModel{}).
		Where("id = ?", t.currentWeekID).
		Updates(map[string]any{
			"total_hours": total,
			"status":      string(entity.StatusForTotal(total)),
			"updated_at":  time.Now().UTC(),
		}).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{week_id}}", t.currentWeekID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created/fetched object's ID so later steps can
		// reference it through {{week_id}} / {{entry_id}} placeholders.
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, isWeek := responseBody["week_number"]; isWeek {
					t.currentWeekID = id
				} else if _, isEntry := responseBody["hours"]; isEntry {
					t.currentEntryID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if tableModel, ok := t.db.GetModel(table); ok {
		modelType := reflect.TypeOf(tableModel).Elem()
		modelSlice := reflect.MakeSlice(reflect.SliceOf(modelType), 0, 0)
		modelSlicePtr := reflect.New(modelSlice.Type())
		modelSlicePtr.Elem().Set(modelSlice)

		result := t.db.DbConn.Unscoped().Find(modelSlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := modelSlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if tableModel, ok := t.db.GetModel(table); ok {
		modelType := reflect.TypeOf(tableModel).Elem()
		modelSlice := reflect.MakeSlice(reflect.SliceOf(modelType), 0, 0)
		modelSlicePtr := reflect.New(modelSlice.Type())
		modelSlicePtr.Elem().Set(modelSlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(modelSlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := modelSlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
