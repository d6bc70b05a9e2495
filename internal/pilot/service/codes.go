package service

// Top-level validation codes, one per operation.
const (
	CodeInvalidPilotCreationData      = "InvalidPilotCreationData"
	CodeInvalidTravelData             = "InvalidTravelData"
	CodeInvalidRefuelData             = "InvalidRefuelData"
	CodeInvalidContractAcceptanceData = "InvalidContractAcceptanceData"

	msgInvalidPilotCreationData      = "Invalid pilot creation data!"
	msgInvalidTravelData             = "Invalid travel data!"
	msgInvalidRefuelData             = "Invalid refuel data!"
	msgInvalidContractAcceptanceData = "Invalid contract acceptance data!"
)

// Entry codes.
const (
	CodePilotNotFound                                       = "PilotNotFound"
	CodePilotHasNoShip                                      = "PilotHasNoShip"
	CodePlanetNotFound                                      = "PlanetNotFound"
	CodeShipNotFound                                        = "ShipNotFound"
	CodeShipAlreadyHasOwner                                 = "ShipAlreadyHasOwner"
	CodeInvalidPilotCertificationChecksum                   = "InvalidPilotCertificationChecksum"
	CodeCertificationAlreadyExists                          = "CertificationAlreadyExists"
	CodeOriginAndDestinationAreEqual                        = "OriginAndDestinationAreEqual"
	CodeTravelImpossible                                    = "TravelImpossible"
	CodeNotEnoughFuel                                       = "NotEnoughFuel"
	CodeInvalidRefuelAmount                                 = "InvalidRefuelAmount"
	CodeInsufficientCredits                                 = "InsufficientCredits"
	CodeFuelOverflow                                        = "FuelOverflow"
	CodeContractNotFound                                    = "ContractNotFound"
	CodeContractAlreadyFulfilled                            = "ContractAlreadyFulfilled"
	CodeContractAlreadyAccepted                             = "ContractAlreadyAccepted"
	CodePilotCurrentLocationAndContractOriginPlanetMismatch = "PilotCurrentLocationAndContractOriginPlanetMismatch"
	CodeContractPayloadTooHeavy                             = "ContractPayloadTooHeavy"
)
