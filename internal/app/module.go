package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/hazelshop/admin-backend/internal/app/api/server"
	"github.com/hazelshop/admin-backend/internal/app/service/delivery"
	"github.com/hazelshop/admin-backend/internal/app/service/notification"
	"github.com/hazelshop/admin-backend/internal/app/service/order"
	"github.com/hazelshop/admin-backend/internal/app/service/statistics"
	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/internal/platform/db"
	"github.com/hazelshop/admin-backend/internal/platform/events"
	"github.com/hazelshop/admin-backend/pkg/config"
	"github.com/hazelshop/admin-backend/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	events.Module,
	server.Module,
	status.Module,
	notification.Module,
	order.Module,
	delivery.Module,
	statistics.Module,
)
