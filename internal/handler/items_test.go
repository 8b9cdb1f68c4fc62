package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

func TestHandleEquipItem(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockGameService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Equip Success",
			reqBody: EquipItemRequest{ItemID: "item-1", Equip: true},
			setupMocks: func(m *MockGameService) {
				m.On("SetEquipped", mock.Anything, DefaultPlayerID, "item-1", true).Return(starterResult(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Unequip Success",
			reqBody: EquipItemRequest{PlayerID: "coach", ItemID: "item-1", Equip: false},
			setupMocks: func(m *MockGameService) {
				m.On("SetEquipped", mock.Anything, "coach", "item-1", false).Return(starterResult(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Item ID",
			reqBody:        EquipItemRequest{Equip: true},
			setupMocks:     func(m *MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(m *MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:    "Item Not Found",
			reqBody: EquipItemRequest{ItemID: "missing", Equip: true},
			setupMocks: func(m *MockGameService) {
				m.On("SetEquipped", mock.Anything, DefaultPlayerID, "missing", true).
					Return(nil, fmt.Errorf("%w: missing", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGameService)
			tt.setupMocks(mockSvc)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/items/equip", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			HandleEquipItem(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSellItem(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockGameService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			reqBody: SellItemRequest{ItemID: "item-1"},
			setupMocks: func(m *MockGameService) {
				result := starterResult()
				result.GoldGained = 20
				m.On("SellItem", mock.Anything, DefaultPlayerID, "item-1").Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"gold_gained":20`,
		},
		{
			name:           "Missing Item ID",
			reqBody:        SellItemRequest{},
			setupMocks:     func(m *MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:    "Item Not Found",
			reqBody: SellItemRequest{ItemID: "missing"},
			setupMocks: func(m *MockGameService) {
				m.On("SellItem", mock.Anything, DefaultPlayerID, "missing").
					Return(nil, fmt.Errorf("%w: missing", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGameService)
			tt.setupMocks(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/items/sell", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			HandleSellItem(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
