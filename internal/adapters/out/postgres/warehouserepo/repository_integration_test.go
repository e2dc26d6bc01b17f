package warehouserepo_test

import (
	"context"
	"testing"

	"profast/internal/adapters/out/postgres/pgtest"
	"profast/internal/adapters/out/postgres/warehouserepo"
	"profast/internal/core/domain/model/warehouse"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type WarehouseRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *warehouserepo.GormWarehouseRepository
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repo = warehouserepo.NewGormWarehouseRepository(db)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestUpsertAndList() {
	ctx := context.Background()
	seed := []warehouse.Warehouse{
		{Region: "Dhaka", District: "Gazipur", City: "Gazipur", CoveredArea: []string{"Tongi", "Kaliakair"}, Status: "active", Latitude: 24.0, Longitude: 90.4},
		{Region: "Chattogram", District: "Cox's Bazar", City: "Cox's Bazar", CoveredArea: []string{"Teknaf"}, Status: "active"},
		{Region: "Dhaka", District: "Dhaka", City: "Dhaka", Status: "active"},
	}

	n, err := suite.repo.Upsert(ctx, seed)
	suite.Require().NoError(err)
	suite.Equal(int64(3), n)

	seed[0].CoveredArea = []string{"Tongi"}
	_, err = suite.repo.Upsert(ctx, seed[:1])
	suite.Require().NoError(err)

	got, err := suite.repo.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal("Cox's Bazar", got[0].District)
	suite.Equal("Dhaka", got[1].District)
	suite.Equal([]string{}, got[1].CoveredArea)
	suite.Equal([]string{"Tongi"}, got[2].CoveredArea)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestUpsert_RequiresDistrict() {
	_, err := suite.repo.Upsert(context.Background(), []warehouse.Warehouse{{Region: "Dhaka"}})

	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func TestWarehouseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseRepositoryIntegrationTestSuite))
}
