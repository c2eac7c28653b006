package usecases_test

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	cropsDomain "green-link/internal/crops/domain"
	cropsUsecases "green-link/internal/crops/usecases"
	"green-link/internal/infra/notification"
	shareddomain "green-link/internal/shared_kernel/domain"
)

type mockCropRepository struct {
	crops        map[string]cropsDomain.Crop
	order        []string
	createCalled bool
	updateCalled bool
	createError  error
	findError    error
	updateError  error
	deleteError  error
}

func newMockCropRepository() *mockCropRepository {
	return &mockCropRepository{crops: make(map[string]cropsDomain.Crop)}
}

func (m *mockCropRepository) Create(_ context.Context, crop cropsDomain.Crop) error {
	m.createCalled = true
	if m.createError != nil {
		return m.createError
	}
	m.crops[crop.ID.String()] = crop
	m.order = append(m.order, crop.ID.String())
	return nil
}

func (m *mockCropRepository) FindAll(_ context.Context, filter cropsUsecases.CropFilter) ([]cropsDomain.Crop, int, error) {
	if m.findError != nil {
		return nil, 0, m.findError
	}
	result := make([]cropsDomain.Crop, 0)
	for _, id := range m.order {
		crop := m.crops[id]
		if strings.Contains(strings.ToLower(crop.Name.String()), strings.ToLower(filter.Query)) {
			result = append(result, crop)
		}
	}
	return result, len(result), nil
}

func (m *mockCropRepository) GetByID(_ context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	if m.findError != nil {
		return cropsDomain.Crop{}, m.findError
	}
	crop, ok := m.crops[id.String()]
	if !ok {
		return cropsDomain.Crop{}, cropsUsecases.ErrCropNotFound
	}
	return crop, nil
}

func (m *mockCropRepository) FindHarvestingBetween(_ context.Context, from, to time.Time) ([]cropsDomain.Crop, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	result := make([]cropsDomain.Crop, 0)
	for _, id := range m.order {
		crop := m.crops[id]
		if crop.ExpectedHarvestDate == nil {
			continue
		}
		if !crop.ExpectedHarvestDate.Before(from) && !crop.ExpectedHarvestDate.After(to) {
			result = append(result, crop)
		}
	}
	return result, nil
}

func (m *mockCropRepository) Update(_ context.Context, crop cropsDomain.Crop) error {
	m.updateCalled = true
	if m.updateError != nil {
		return m.updateError
	}
	m.crops[crop.ID.String()] = crop
	return nil
}

func (m *mockCropRepository) Delete(_ context.Context, id shareddomain.ID) (cropsDomain.Crop, error) {
	if m.deleteError != nil {
		return cropsDomain.Crop{}, m.deleteError
	}
	crop, ok := m.crops[id.String()]
	if !ok {
		return cropsDomain.Crop{}, cropsUsecases.ErrCropNotFound
	}
	delete(m.crops, id.String())
	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id.String() })
	return crop, nil
}

type recordingNotificationClient struct {
	mu       sync.Mutex
	sms      []notification.SMS
	smsError error
}

func (c *recordingNotificationClient) SendEmail(context.Context, notification.Email) error {
	return nil
}

func (c *recordingNotificationClient) SendSMS(_ context.Context, sms notification.SMS) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.smsError != nil {
		return c.smsError
	}
	c.sms = append(c.sms, sms)
	return nil
}

func (c *recordingNotificationClient) sent() []notification.SMS {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.sms)
}
