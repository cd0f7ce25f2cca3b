package commands_test

import (
	"testing"

	"parceltracking/internal/core/application/usecases/commands"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBarcode = "RMARS1234567890123456789M"

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(validBarcode, "Alice", "Bob", "Tea", "Express")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, validBarcode, cmd.Barcode().String())
	assert.Equal(t, "Alice", cmd.Sender())
	assert.Equal(t, "Bob", cmd.Recipient())
	assert.Equal(t, "Tea", cmd.Contents())
	assert.Equal(t, parcel.Express, cmd.DeliveryService())
}

func TestNewCreateParcelCommand_InvalidBarcode(t *testing.T) {
	_, err := commands.NewCreateParcelCommand("RMARS123", "Alice", "Bob", "Tea", "Standard")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateParcelCommand_EmptyBarcode(t *testing.T) {
	_, err := commands.NewCreateParcelCommand("", "Alice", "Bob", "Tea", "Standard")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateParcelCommand_DeliveryServiceIsCaseSensitive(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(validBarcode, "Alice", "Bob", "Tea", "express")

	require.ErrorIs(t, err, errs.ErrInvalidService)
}

func TestNewCreateParcelCommand_ReportsEveryInvalidField(t *testing.T) {
	_, err := commands.NewCreateParcelCommand("bad", "Alice", "Bob", "Tea", "Overnight")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrInvalidService)
}

func TestCreateParcelCommand_NotConstructed(t *testing.T) {
	err := commands.CreateParcelCommand{}.Validate()

	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
