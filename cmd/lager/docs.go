package main

// @title Lagerbestand API
// @version 1.0
// @description Local inventory ledger: stock items, booking log and backup/restore.

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name Items
// @tag.description Item management endpoints

// @tag.name Bookings
// @tag.description Stock adjustment ledger endpoints

// @tag.name Backup
// @tag.description Backup and restore endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
