package main

// @title Smart Stock API
// @version 1.0
// @description Stock and warehouse management backend with inter-warehouse transfers and full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/YarenOpuz/smart-stock
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/YarenOpuz/smart-stock/blob/main/LICENSE

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Warehouses
// @tag.description Warehouse management endpoints

// @tag.name Products
// @tag.description Product and stock management endpoints

// @tag.name Health
// @tag.description Health check endpoints
