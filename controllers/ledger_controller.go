// controllers/ledger_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-ledger/services"
	"hotel-ledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type BookRoomPayload struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	RoomID uint   `json:"room_id"`
	Nights int    `json:"nights"`
}

type OrderFoodPayload struct {
	CustomerID uint `json:"customer_id"`
	ItemID     uint `json:"item_id"`
	Quantity   int  `json:"quantity"`
}

// ---------------------------
// Controller
// ---------------------------

type LedgerController struct {
	Ledger *services.HotelLedger
	log    *zap.Logger
}

func NewLedgerController(ledger *services.HotelLedger, log *zap.Logger) *LedgerController {
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerController{Ledger: ledger, log: log}
}

// respondLedgerError maps ledger error kinds onto status codes and error codes.
func (ctrl *LedgerController) respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "error.roomUnavailable", "Room not available")
	case errors.Is(err, services.ErrInvalidNights):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidNights", "Number of nights must be a positive integer")
	case errors.Is(err, services.ErrInvalidQuantity):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidQuantity", "Quantity must be a positive integer")
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.customerNotFound", "Customer not found")
	case errors.Is(err, services.ErrUnknownCustomer):
		utils.JSONError(c, http.StatusNotFound, "error.unknownCustomer", "No checked-in customer with that id")
	case errors.Is(err, services.ErrUnknownMenuItem):
		utils.JSONError(c, http.StatusNotFound, "error.unknownMenuItem", "No food menu item with that id")
	default:
		ctrl.log.Error("ledger call failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Internal error")
	}
}

func parseStayID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Stay id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// GET /api/rooms
func (ctrl *LedgerController) ListRooms(c *gin.Context) {
	rooms, err := ctrl.Ledger.ListRooms(c.Request.Context())
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/menu
func (ctrl *LedgerController) ListMenu(c *gin.Context) {
	items, err := ctrl.Ledger.ListMenu(c.Request.Context())
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// GET /api/stays
func (ctrl *LedgerController) ListStays(c *gin.Context) {
	stays, err := ctrl.Ledger.ListStays(c.Request.Context())
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stays)
}

// POST /api/stays
func (ctrl *LedgerController) BookRoom(c *gin.Context) {
	var p BookRoomPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid booking payload: "+err.Error())
		return
	}

	stayID, err := ctrl.Ledger.BookRoom(c.Request.Context(), p.Name, p.Phone, p.RoomID, p.Nights)
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"stay_id": stayID})
}

// POST /api/orders
func (ctrl *LedgerController) OrderFood(c *gin.Context) {
	var p OrderFoodPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid order payload: "+err.Error())
		return
	}

	orderID, err := ctrl.Ledger.OrderFood(c.Request.Context(), p.CustomerID, p.ItemID, p.Quantity)
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"order_id": orderID})
}

// GET /api/stays/:id/bill
func (ctrl *LedgerController) GenerateBill(c *gin.Context) {
	id, ok := parseStayID(c)
	if !ok {
		return
	}
	bill, err := ctrl.Ledger.GenerateBill(c.Request.Context(), id)
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// POST /api/stays/:id/checkout
func (ctrl *LedgerController) Checkout(c *gin.Context) {
	id, ok := parseStayID(c)
	if !ok {
		return
	}
	bill, err := ctrl.Ledger.Checkout(c.Request.Context(), id)
	if err != nil {
		ctrl.respondLedgerError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}
