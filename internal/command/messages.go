package command

// User-visible message texts and formats.
const (
	msgAddedClient = "New client added: %s"
	msgAddedPastry = "New pastry added: %s"
	msgAddedOrder  = "New order added: %s"

	msgEditedClient = "Edited client: %s"
	msgEditedPastry = "Edited pastry: %s"
	msgEditedOrder  = "Edited order: %s"

	msgDeletedClient = "Deleted client: %s"
	msgDeletedPastry = "Deleted pastry: %s"
	msgDeletedOrder  = "Deleted order: %s"

	msgDuplicateClient = "this client already exists in the address book"
	msgDuplicatePastry = "this pastry already exists in the bakery"
	msgDuplicateOrder  = "this order already exists in the bakery"

	msgInvalidClientIndex = "the client index provided is invalid"
	msgInvalidPastryIndex = "the pastry index provided is invalid"
	msgInvalidOrderIndex  = "the order index provided is invalid"

	msgClientsListed  = "%d clients listed!"
	msgPastriesListed = "%d pastries listed!"
	msgOrdersListed   = "%d orders listed!"

	msgViewingList  = "Viewing full %s list"
	msgViewingIndex = "Viewing %s at index %d"

	msgCleared = "Bakery records have been cleared!"
)
