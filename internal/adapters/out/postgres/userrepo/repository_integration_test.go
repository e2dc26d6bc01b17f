package userrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"profast/internal/adapters/out/postgres/pgtest"
	"profast/internal/adapters/out/postgres/riderrepo"
	"profast/internal/adapters/out/postgres/userrepo"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repo = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail(email), "Name", "https://img/x.png", time.Now())
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGetByEmail() {
	ctx := context.Background()
	u := suite.newUser("user@example.com")

	suite.Require().NoError(suite.repo.Add(ctx, u))
	got, err := suite.repo.GetByEmail(ctx, u.Email())

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(u.ID()))
	suite.Equal(user.RoleUser, got.Role())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ConcurrentDuplicatesLeaveOneRow() {
	ctx := context.Background()
	const callers = 8
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repo.Add(ctx, suite.newUser("same@example.com"))
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrConflict):
			conflicts++
		}
	}
	suite.Equal(1, ok)
	suite.Equal(callers-1, conflicts)

	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Where("email = ?", "same@example.com").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	u := suite.newUser("user@example.com")
	suite.Require().NoError(suite.repo.Add(ctx, u))
	_, err := u.ChangeRole(user.RoleAdmin)
	suite.Require().NoError(err)

	res, err := suite.repo.Update(ctx, u)

	suite.Require().NoError(err)
	suite.Equal(int64(1), res.MatchedCount)
	got, _ := suite.repo.Get(ctx, u.ID())
	suite.Equal(user.RoleAdmin, got.Role())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	_, err := suite.repo.Update(context.Background(), suite.newUser("ghost@example.com"))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestListPromotable() {
	ctx := context.Background()
	riders := riderrepo.NewGormRiderRepository(suite.db)

	approved := suite.newUser("approved@example.com")
	pending := suite.newUser("pending@example.com")
	admin := suite.newUser("admin@example.com")
	_, _ = admin.ChangeRole(user.RoleAdmin)
	for _, u := range []*user.User{approved, pending, admin} {
		suite.Require().NoError(suite.repo.Add(ctx, u))
	}

	for email, approve := range map[string]bool{
		"approved@example.com": true,
		"pending@example.com":  false,
		"admin@example.com":    true,
	} {
		r, err := rider.NewRider(kernel.NewUUID(), kernel.MustEmail(email), rider.Profile{
			Name: "R", Phone: "019", Age: 30, Region: "Dhaka", District: "Dhaka",
			NID: "1", BikeBrand: "Honda", BikeRegistration: "DM-1",
		}, time.Now())
		suite.Require().NoError(err)
		if approve {
			suite.Require().NoError(r.Approve())
		}
		suite.Require().NoError(riders.Add(ctx, r))
	}

	got, err := suite.repo.ListPromotable(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("approved@example.com", got[0].Email().String())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
