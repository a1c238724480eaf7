/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package collectors

// IF-MIB
const (
	OidIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	OidIfType        = ".1.3.6.1.2.1.2.2.1.3"
	OidIfSpeed       = ".1.3.6.1.2.1.2.2.1.5"
	OidIfPhysAddress = ".1.3.6.1.2.1.2.2.1.6"
	OidIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	OidIfName        = ".1.3.6.1.2.1.31.1.1.1.1"
	OidIfHighSpeed   = ".1.3.6.1.2.1.31.1.1.1.15"
	OidIfAlias       = ".1.3.6.1.2.1.31.1.1.1.18"
	OidIfStackStatus = ".1.3.6.1.2.1.31.1.2.1.3"
)

// BRIDGE-MIB, Q-BRIDGE-MIB
const (
	oidDot1dBasePortIfIndex    = ".1.3.6.1.2.1.17.1.4.1.2"
	OidDot1dTpFdbPort          = ".1.3.6.1.2.1.17.4.3.1.2"
	OidDot1qTpFdbPort          = ".1.3.6.1.2.1.17.7.1.2.2.1.2"
	OidDot1qVlanStaticName     = ".1.3.6.1.2.1.17.7.1.4.3.1.1"
	OidDot1qVlanStaticEgress   = ".1.3.6.1.2.1.17.7.1.4.3.1.2"
	oidIPNetToMediaPhysAddress = ".1.3.6.1.2.1.4.22.1.2"
)

// MAU-MIB
const (
	oidIfMauType               = ".1.3.6.1.2.1.26.2.1.1.3"
	oidIfMauAutoNegAdminStatus = ".1.3.6.1.2.1.26.5.1.1.1"
)

// LLDP-MIB and its 802.1/802.3 extensions
const (
	oidLldpPortConfigAdminStatus = ".1.0.8802.1.1.2.1.1.6.1.2"
	oidLldpRemChassisIDSubtype   = ".1.0.8802.1.1.2.1.4.1.1.4"
	oidLldpRemChassisID          = ".1.0.8802.1.1.2.1.4.1.1.5"
	oidLldpRemPortIDSubtype      = ".1.0.8802.1.1.2.1.4.1.1.6"
	oidLldpRemPortID             = ".1.0.8802.1.1.2.1.4.1.1.7"
	oidLldpRemPortDesc           = ".1.0.8802.1.1.2.1.4.1.1.8"
	oidLldpRemSysName            = ".1.0.8802.1.1.2.1.4.1.1.9"
	oidLldpRemSysDesc            = ".1.0.8802.1.1.2.1.4.1.1.10"
	oidLldpRemManAddrIfID        = ".1.0.8802.1.1.2.1.4.2.1.3"
	oidLldpXdot1LocVlanName      = ".1.0.8802.1.1.2.1.5.32962.1.2.3.1.2"
	oidLldpXdot1RemVlanName      = ".1.0.8802.1.1.2.1.5.32962.1.3.3.1.2"
	oidLldpXdot3LocAutoNegEnable = ".1.0.8802.1.1.2.1.5.4623.1.2.1.1.2"
	oidLldpXdot3LocOperMauType   = ".1.0.8802.1.1.2.1.5.4623.1.2.1.1.4"
)

// Cisco
const (
	oidCdpCacheAddress        = ".1.3.6.1.4.1.9.9.23.1.2.1.1.4"
	oidCdpCacheDeviceID       = ".1.3.6.1.4.1.9.9.23.1.2.1.1.6"
	oidCdpCacheDevicePort     = ".1.3.6.1.4.1.9.9.23.1.2.1.1.7"
	oidCdpCachePlatform       = ".1.3.6.1.4.1.9.9.23.1.2.1.1.8"
	OidVtpVlanName            = ".1.3.6.1.4.1.9.9.46.1.3.1.1.4"
	oidVlanTrunkPortEnabled   = ".1.3.6.1.4.1.9.9.46.1.6.1.1.4"
	oidVlanTrunkPortEnabled2k = ".1.3.6.1.4.1.9.9.46.1.6.1.1.17"
	oidVlanTrunkPortEnabled3k = ".1.3.6.1.4.1.9.9.46.1.6.1.1.18"
	oidVlanTrunkPortEnabled4k = ".1.3.6.1.4.1.9.9.46.1.6.1.1.19"
	oidVlanTrunkPortDynStatus = ".1.3.6.1.4.1.9.9.46.1.6.1.1.14"
	oidVMVlan                 = ".1.3.6.1.4.1.9.9.68.1.2.2.1.2"
	oidPagpGroupIfIndex       = ".1.3.6.1.4.1.9.9.98.1.1.1.1.8"
	oidCiscoPortAdminSpeed    = ".1.3.6.1.4.1.9.5.1.4.1.1.9"
	oidCiscoPortDuplex        = ".1.3.6.1.4.1.9.5.1.4.1.1.10"
	oidCiscoPortIfIndex       = ".1.3.6.1.4.1.9.5.1.4.1.1.11"
)

// Nortel / Avaya
const (
	oidS5EnMsTopNmmSegID = ".1.3.6.1.4.1.45.1.6.13.2.1.1.4"
	OidRcVlanName        = ".1.3.6.1.4.1.2272.1.3.2.1.2"
	OidRcVlanPortMembers = ".1.3.6.1.4.1.2272.1.3.2.1.13"
	oidRcMltPortMembers  = ".1.3.6.1.4.1.2272.1.17.10.1.3"
	oidRcMltIfIndex      = ".1.3.6.1.4.1.2272.1.17.10.1.11"
)

// Extreme
const (
	oidExtremeVlanIfDescr       = ".1.3.6.1.4.1.1916.1.2.1.2.1.2"
	oidExtremeVlanIfVlanID      = ".1.3.6.1.4.1.1916.1.2.1.2.1.10"
	oidExtremeVlanTaggedPorts   = ".1.3.6.1.4.1.1916.1.2.6.1.1.1"
	oidExtremeVlanUntaggedPorts = ".1.3.6.1.4.1.1916.1.2.6.1.1.2"
	oidExtremeEdpNeighborName   = ".1.3.6.1.4.1.1916.1.13.2.1.3"
	oidExtremeEdpNeighborSlot   = ".1.3.6.1.4.1.1916.1.13.2.1.5"
	oidExtremeEdpNeighborPort   = ".1.3.6.1.4.1.1916.1.13.2.1.6"
	oidExtremeEdpNeighborVlanID = ".1.3.6.1.4.1.1916.1.13.3.1.2"
)

// Juniper
const (
	oidJnxExVlanName       = ".1.3.6.1.4.1.2636.3.40.1.5.1.5.1.2"
	oidJnxExVlanTag        = ".1.3.6.1.4.1.2636.3.40.1.5.1.5.1.5"
	oidJnxExVlanPortStatus = ".1.3.6.1.4.1.2636.3.40.1.5.1.7.1.3"
)

// ifType values
const (
	ifTypeEthernetCsmacd  = 6
	ifTypeFastEther       = 62
	ifTypeGigabitEthernet = 117
	ifTypePropVirtual     = 53
	ifTypePropMultiplexor = 54
	ifTypeL2Vlan          = 135
	ifTypeIEEE8023adLag   = 161
	ifOperStatusUp        = 1
	ifSpeedSaturated      = 4294967295
	saturatedFallbackMbps = 10000
	bitsPerMbit           = 1000000
)
