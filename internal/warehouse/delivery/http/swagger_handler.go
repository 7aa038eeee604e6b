package http

// CreateWarehouse godoc
// @Summary Create warehouse
// @Description Create a new warehouse owned by the authenticated user
// @Tags Warehouses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,location=string,capacity=int,rental_price=number,type=string} true "Warehouse data"
// @Success 201 {object} object{id=int,name=string,location=string,capacity=int,rental_price=number,type=string,is_available=bool,owner_id=int}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /warehouses [post]
func (h *WarehouseHandler) CreateWarehouseDoc() {}

// GetWarehouse godoc
// @Summary Get warehouse by ID
// @Description Get a specific warehouse's details
// @Tags Warehouses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} object{id=int,name=string,location=string,capacity=int,rental_price=number,type=string,is_available=bool,owner_id=int}
// @Failure 404 {object} object{error=string}
// @Router /warehouses/{id} [get]
func (h *WarehouseHandler) GetWarehouseDoc() {}

// ListWarehouses godoc
// @Summary List warehouses
// @Description List all warehouses with pagination
// @Tags Warehouses
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} object{id=int,name=string,location=string,capacity=int,owner_id=int}
// @Router /warehouses [get]
func (h *WarehouseHandler) ListWarehousesDoc() {}

// ListUserWarehouses godoc
// @Summary List a user's warehouses
// @Description List all warehouses owned by the given user
// @Tags Warehouses
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} object{id=int,name=string,location=string,capacity=int,owner_id=int}
// @Failure 404 {object} object{error=string}
// @Router /users/{id}/warehouses [get]
func (h *WarehouseHandler) ListUserWarehousesDoc() {}

// UpdateWarehouse godoc
// @Summary Update warehouse
// @Description Update a warehouse's details
// @Tags Warehouses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Warehouse ID"
// @Param request body object{name=string,location=string,capacity=int,rental_price=number,type=string,is_available=bool} true "Update data"
// @Success 200 {object} object{id=int,name=string,location=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /warehouses/{id} [put]
func (h *WarehouseHandler) UpdateWarehouseDoc() {}

// DeleteWarehouse godoc
// @Summary Delete warehouse
// @Description Delete a warehouse
// @Tags Warehouses
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} object{error=string}
// @Router /warehouses/{id} [delete]
func (h *WarehouseHandler) DeleteWarehouseDoc() {}
