package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

func TestListHostelsIsPublic(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/hostels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var hostels []model.Hostel
	decode(t, w, &hostels)
	assert.Len(t, hostels, 3)
}

func TestAdminCreatesHostel(t *testing.T) {
	router, _, _ := newTestRouter()

	// Prime the GET cache, then mutate; the mutation must invalidate it.
	w := doJSON(router, http.MethodGet, "/api/hostels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	login(t, router, "admin", "admin")
	w = doJSON(router, http.MethodPost, "/api/hostels", gin.H{
		"name": "X", "location": "Y", "totalRooms": 10, "availableRooms": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Hostel
	decode(t, w, &created)
	assert.Equal(t, "h4", created.ID)
	assert.Equal(t, "X", created.Name)
	assert.Equal(t, "Y", created.Location)
	assert.Equal(t, 10, created.TotalRooms)
	assert.Equal(t, 10, created.AvailableRooms)

	w = doJSON(router, http.MethodGet, "/api/hostels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hostels []model.Hostel
	decode(t, w, &hostels)
	assert.Len(t, hostels, 4)
}

func TestUpdateHostelNotFound(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "admin", "admin")

	w := doJSON(router, http.MethodPatch, "/api/hostels/h999", gin.H{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHostelLeavesRoomsDangling(t *testing.T) {
	router, s, _ := newTestRouter()
	login(t, router, "admin", "admin")

	w := doJSON(router, http.MethodDelete, "/api/hostels/h1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Rooms that pointed at h1 still exist; reads tolerate the hole.
	assert.NotEmpty(t, s.RoomsByHostel("h1"))
	w = doJSON(router, http.MethodGet, "/api/rooms?hostel_id=h1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListRoomsCarriesFormattedPrice(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "staff", "staff")

	w := doJSON(router, http.MethodGet, "/api/rooms?hostel_id=h1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []struct {
		model.Room
		PriceFormatted string `json:"priceFormatted"`
	}
	decode(t, w, &rooms)
	require.Len(t, rooms, 2)
	assert.Equal(t, "₹5,000", rooms[0].PriceFormatted)
}

func TestStaffFlipsRoomStatus(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "staff", "staff")

	w := doJSON(router, http.MethodPatch, "/api/rooms/r1", gin.H{"status": "maintenance"})
	require.Equal(t, http.StatusOK, w.Code)

	var room struct {
		model.Room
		PriceFormatted string `json:"priceFormatted"`
	}
	decode(t, w, &room)
	assert.Equal(t, model.RoomMaintenance, room.Status)

	w = doJSON(router, http.MethodPatch, "/api/rooms/r1", gin.H{"status": "haunted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomDefaultsToAvailable(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "admin", "admin")

	w := doJSON(router, http.MethodPost, "/api/rooms", gin.H{
		"number": "401", "type": "double", "price": 4200, "hostelId": "h3",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var room struct {
		model.Room
		PriceFormatted string `json:"priceFormatted"`
	}
	decode(t, w, &room)
	assert.Equal(t, "r6", room.ID)
	assert.Equal(t, model.RoomAvailable, room.Status)
	assert.Equal(t, "₹4,200", room.PriceFormatted)
}
