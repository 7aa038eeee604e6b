package http

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product line in a warehouse
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,quantity=int,warehouse_id=int} true "Product data"
// @Success 201 {object} object{id=int,name=string,description=string,quantity=int,is_active=bool,warehouse_id=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /products [post]
func (h *ProductHandler) CreateProductDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product's details
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{id=int,name=string,description=string,quantity=int,is_active=bool,warehouse_id=int}
// @Failure 404 {object} object{error=string}
// @Router /products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description List products with pagination, optionally filtered by warehouse
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param warehouse_id query int false "Warehouse filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} object{id=int,name=string,quantity=int,warehouse_id=int}
// @Router /products [get]
func (h *ProductHandler) ListProductsDoc() {}

// UpdateProduct godoc
// @Summary Update product
// @Description Update a product's details
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,quantity=int,is_active=bool,warehouse_id=int} true "Update data"
// @Success 200 {object} object{id=int,name=string,quantity=int,warehouse_id=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product line
// @Tags Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} object{error=string}
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// TransferStock godoc
// @Summary Transfer stock between warehouses
// @Description Atomically move a quantity of a product from a source warehouse to a target warehouse. Stock merges into an existing matching product line in the target, or a new line is created.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,source_warehouse_id=int,target_warehouse_id=int,quantity=int} true "Transfer request"
// @Success 200 {object} object{id=int,name=string,description=string,quantity=int,warehouse_id=int}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /products/transfer [post]
func (h *ProductHandler) TransferStockDoc() {}
