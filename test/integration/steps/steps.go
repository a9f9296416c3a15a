package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
	"github.com/budgeteur/backend/internal/integration/persistence/model"
)

var tagPlaceholder = regexp.MustCompile(`\{\{tag:([^}]+)\}\}`)

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	d, err := valueobject.ParseDate(date)
	if err != nil {
		return err
	}
	// Noon keeps the date stable while the mock clock ticks.
	t.timeMock.SetCurrentTime(d.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theFollowingTagsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		tag := model.TagFromEntity(&entity.Tag{Name: row["name"], CreatedAt: time.Now().UTC()})
		if err := t.db.DbConn.Create(tag).Error; err != nil {
			return err
		}
		t.tagIDs[tag.Name] = tag.ID
	}
	return nil
}

func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		date, err := valueobject.ParseDate(row["date"])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return err
		}

		tx := &entity.Transaction{
			Date:        date,
			Description: row["description"],
			Amount:      amount,
			CreatedAt:   time.Now().UTC(),
		}
		if name := row["tag"]; name != "" {
			id, ok := t.tagIDs[name]
			if !ok {
				return fmt.Errorf("unknown tag %q", name)
			}
			tx.TagID = &id
		}
		if err := t.db.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theTagIsExcluded(name string) error {
	id, ok := t.tagIDs[name]
	if !ok {
		return fmt.Errorf("unknown tag %q", name)
	}
	return t.db.DbConn.Create(&model.ExcludedTagModel{TagID: id}).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders swaps {{tag:Name}} for the id of the seeded tag.
func (t *testContext) replacePlaceholders(content string) string {
	return tagPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := tagPlaceholder.FindStringSubmatch(match)[1]
		if id, ok := t.tagIDs[name]; ok {
			return strconv.FormatInt(id, 10)
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
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
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var decoded any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = decoded
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
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	default:
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.objectBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.objectBody()
	if err != nil {
		return err
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
	body, err := t.objectBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.objectBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.objectBody()
	if err != nil {
		return err
	}
	return expectItems(getFieldValue(body, field), field, count)
}

func (t *testContext) theResponseShouldHaveItems(count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	return expectItems(t.response.body, "response", count)
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := t.response.headers.Get(header)
	if !strings.Contains(value, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	var count int64
	if err := t.db.DbConn.Model(entity).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDashboardCacheShouldContainEntries(quantity int) error {
	var entries int
	for _, key := range t.redis.Keys() {
		if strings.Contains(key, "dashboard:") {
			entries++
		}
	}
	if entries != quantity {
		return fmt.Errorf("expected %d dashboard cache entries, got %d", quantity, entries)
	}
	return nil
}

func (t *testContext) objectBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func expectItems(value any, field string, count int) error {
	items, ok := value.([]any)
	if !ok {
		if value == nil && count == 0 {
			return nil
		}
		return fmt.Errorf("'%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in '%s', got %d: %v", count, field, len(items), items)
	}
	return nil
}

// getFieldValue resolves a dot separated path such as "intervals.0.period.label".
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, part := range strings.Split(dotSeparatedField, ".") {
		if current == nil {
			return nil
		}
		switch v := current.(type) {
		case map[string]any:
			current = v[part]
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil
			}
			current = v[index]
		default:
			return nil
		}
	}
	return current
}

func tableRows(table *godog.Table) ([]map[string]string, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, errors.New("table has no header row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = strings.TrimSpace(cell.Value)
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = strings.TrimSpace(cell.Value)
		}
		rows = append(rows, values)
	}
	return rows, nil
}
