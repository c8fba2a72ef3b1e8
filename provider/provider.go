package provider

import (
	"alpstech-server/biz/application/service"
	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/repository/assignment"
	"alpstech-server/biz/infrastructure/repository/course"
	"alpstech-server/biz/infrastructure/repository/enrollment"
	"alpstech-server/biz/infrastructure/repository/result"
	"alpstech-server/biz/infrastructure/repository/user"
	"alpstech-server/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	UserService       service.UserService
	CourseService     service.CourseService
	ResultService     service.ResultService
	StudentService    service.StudentService
	DashboardService  service.DashboardService
	AssignmentService service.AssignmentService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.CourseServiceSet,
	service.ResultServiceSet,
	service.StudentServiceSet,
	service.DashboardServiceSet,
	service.AssignmentServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	course.NewMongoMapper,
	enrollment.NewMongoMapper,
	result.NewMongoMapper,
	assignment.NewMongoMapper,
	storage.NewLocalStorage,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
