package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedDate = addressM.CreatedDate
	address.LastModifiedDate = addressM.LastModifiedDate

	return nil
}

// FindAddressByID retrieves an address by its ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress overwrites the address columns.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := updateRow(ctx, repo.db, addressM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.LastModifiedDate = addressM.LastModifiedDate

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.AddressModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:                  data.ID,
		Country:             data.Country,
		CountryCode:         data.CountryCode,
		Province:            data.Province,
		ProvinceCode:        data.ProvinceCode,
		City:                data.City,
		CityCode:            data.CityCode,
		Barangay:            data.Barangay,
		BarangayCode:        data.BarangayCode,
		HouseBuildingNumber: data.HouseBuildingNumber,
		CreatedDate:         data.CreatedDate,
		LastModifiedDate:    data.LastModifiedDate,
	}
}

// fromAddressDomain leaves the timestamps zero; the store fills them.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:                  data.ID,
		Country:             data.Country,
		CountryCode:         data.CountryCode,
		Province:            data.Province,
		ProvinceCode:        data.ProvinceCode,
		City:                data.City,
		CityCode:            data.CityCode,
		Barangay:            data.Barangay,
		BarangayCode:        data.BarangayCode,
		HouseBuildingNumber: data.HouseBuildingNumber,
	}
}
