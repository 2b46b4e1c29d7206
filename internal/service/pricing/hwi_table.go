package pricing

// hwiInsuranceTable: ставки страхования HWI по сумме договора, отсортированы по PoolAmount.
// Значения временные, не настоящие тарифы страховщика.
// TODO: заменить на утверждённую таблицу ставок HWI до запуска в продакшн.
var hwiInsuranceTable = []HWIRate{
	{PoolAmount: 3300, InsuranceCost: 101.34},
	{PoolAmount: 4000, InsuranceCost: 109.60},
	{PoolAmount: 5000, InsuranceCost: 121.40},
	{PoolAmount: 6000, InsuranceCost: 133.20},
	{PoolAmount: 7000, InsuranceCost: 145.00},
	{PoolAmount: 8000, InsuranceCost: 156.80},
	{PoolAmount: 9000, InsuranceCost: 168.60},
	{PoolAmount: 10000, InsuranceCost: 180.40},
	{PoolAmount: 11000, InsuranceCost: 192.20},
	{PoolAmount: 12000, InsuranceCost: 204.00},
	{PoolAmount: 13000, InsuranceCost: 215.80},
	{PoolAmount: 14000, InsuranceCost: 227.60},
	{PoolAmount: 15000, InsuranceCost: 239.40},
	{PoolAmount: 16000, InsuranceCost: 251.20},
	{PoolAmount: 17000, InsuranceCost: 263.00},
	{PoolAmount: 18000, InsuranceCost: 274.80},
	{PoolAmount: 19000, InsuranceCost: 286.60},
	{PoolAmount: 20000, InsuranceCost: 298.40},
	{PoolAmount: 21000, InsuranceCost: 307.80},
	{PoolAmount: 22000, InsuranceCost: 317.20},
	{PoolAmount: 23000, InsuranceCost: 326.60},
	{PoolAmount: 24000, InsuranceCost: 336.00},
	{PoolAmount: 25000, InsuranceCost: 345.40},
	{PoolAmount: 26000, InsuranceCost: 354.80},
	{PoolAmount: 27000, InsuranceCost: 364.20},
	{PoolAmount: 28000, InsuranceCost: 373.60},
	{PoolAmount: 29000, InsuranceCost: 383.00},
	{PoolAmount: 30000, InsuranceCost: 392.40},
	{PoolAmount: 31000, InsuranceCost: 401.80},
	{PoolAmount: 32000, InsuranceCost: 411.20},
	{PoolAmount: 33000, InsuranceCost: 420.60},
	{PoolAmount: 34000, InsuranceCost: 430.00},
	{PoolAmount: 35000, InsuranceCost: 439.40},
	{PoolAmount: 36000, InsuranceCost: 448.80},
	{PoolAmount: 37000, InsuranceCost: 458.20},
	{PoolAmount: 38000, InsuranceCost: 467.60},
	{PoolAmount: 39000, InsuranceCost: 477.00},
	{PoolAmount: 40000, InsuranceCost: 486.40},
	{PoolAmount: 41000, InsuranceCost: 495.80},
	{PoolAmount: 42000, InsuranceCost: 505.20},
	{PoolAmount: 43000, InsuranceCost: 514.60},
	{PoolAmount: 44000, InsuranceCost: 524.00},
	{PoolAmount: 45000, InsuranceCost: 533.40},
	{PoolAmount: 46000, InsuranceCost: 542.80},
	{PoolAmount: 47000, InsuranceCost: 552.20},
	{PoolAmount: 48000, InsuranceCost: 561.60},
	{PoolAmount: 49000, InsuranceCost: 571.00},
	{PoolAmount: 50000, InsuranceCost: 580.40},
	{PoolAmount: 51000, InsuranceCost: 589.80},
	{PoolAmount: 52000, InsuranceCost: 599.20},
	{PoolAmount: 53000, InsuranceCost: 608.60},
	{PoolAmount: 54000, InsuranceCost: 618.00},
	{PoolAmount: 55000, InsuranceCost: 627.40},
	{PoolAmount: 56000, InsuranceCost: 636.80},
	{PoolAmount: 57000, InsuranceCost: 646.20},
	{PoolAmount: 58000, InsuranceCost: 655.60},
	{PoolAmount: 59000, InsuranceCost: 665.00},
	{PoolAmount: 60000, InsuranceCost: 674.40},
	{PoolAmount: 61000, InsuranceCost: 683.80},
	{PoolAmount: 62000, InsuranceCost: 693.20},
	{PoolAmount: 63000, InsuranceCost: 702.60},
	{PoolAmount: 64000, InsuranceCost: 712.00},
	{PoolAmount: 65000, InsuranceCost: 721.40},
	{PoolAmount: 66000, InsuranceCost: 730.80},
	{PoolAmount: 67000, InsuranceCost: 740.20},
	{PoolAmount: 68000, InsuranceCost: 749.60},
	{PoolAmount: 69000, InsuranceCost: 759.00},
	{PoolAmount: 70000, InsuranceCost: 768.40},
	{PoolAmount: 71000, InsuranceCost: 777.80},
	{PoolAmount: 72000, InsuranceCost: 787.20},
	{PoolAmount: 73000, InsuranceCost: 796.60},
	{PoolAmount: 74000, InsuranceCost: 806.00},
	{PoolAmount: 75000, InsuranceCost: 815.40},
	{PoolAmount: 76000, InsuranceCost: 824.80},
	{PoolAmount: 77000, InsuranceCost: 834.20},
	{PoolAmount: 78000, InsuranceCost: 843.60},
	{PoolAmount: 79000, InsuranceCost: 853.00},
	{PoolAmount: 80000, InsuranceCost: 862.40},
	{PoolAmount: 81000, InsuranceCost: 871.80},
	{PoolAmount: 82000, InsuranceCost: 881.20},
	{PoolAmount: 83000, InsuranceCost: 890.60},
	{PoolAmount: 84000, InsuranceCost: 900.00},
	{PoolAmount: 85000, InsuranceCost: 909.40},
	{PoolAmount: 86000, InsuranceCost: 918.80},
	{PoolAmount: 87000, InsuranceCost: 928.20},
	{PoolAmount: 88000, InsuranceCost: 937.60},
	{PoolAmount: 89000, InsuranceCost: 947.00},
	{PoolAmount: 90000, InsuranceCost: 956.40},
	{PoolAmount: 91000, InsuranceCost: 965.80},
	{PoolAmount: 92000, InsuranceCost: 975.20},
	{PoolAmount: 93000, InsuranceCost: 984.60},
	{PoolAmount: 94000, InsuranceCost: 994.00},
	{PoolAmount: 95000, InsuranceCost: 1003.40},
	{PoolAmount: 96000, InsuranceCost: 1012.80},
	{PoolAmount: 97000, InsuranceCost: 1022.20},
	{PoolAmount: 98000, InsuranceCost: 1031.60},
	{PoolAmount: 99000, InsuranceCost: 1041.00},
	{PoolAmount: 100000, InsuranceCost: 1050.40},
	{PoolAmount: 101000, InsuranceCost: 1058.30},
	{PoolAmount: 102000, InsuranceCost: 1066.20},
	{PoolAmount: 103000, InsuranceCost: 1074.10},
	{PoolAmount: 104000, InsuranceCost: 1082.00},
	{PoolAmount: 105000, InsuranceCost: 1089.90},
	{PoolAmount: 106000, InsuranceCost: 1097.80},
	{PoolAmount: 107000, InsuranceCost: 1105.70},
	{PoolAmount: 108000, InsuranceCost: 1113.60},
	{PoolAmount: 109000, InsuranceCost: 1121.50},
	{PoolAmount: 110000, InsuranceCost: 1129.40},
	{PoolAmount: 111000, InsuranceCost: 1137.30},
	{PoolAmount: 112000, InsuranceCost: 1145.20},
	{PoolAmount: 113000, InsuranceCost: 1153.10},
	{PoolAmount: 114000, InsuranceCost: 1161.00},
	{PoolAmount: 115000, InsuranceCost: 1168.90},
	{PoolAmount: 116000, InsuranceCost: 1176.80},
	{PoolAmount: 117000, InsuranceCost: 1184.70},
	{PoolAmount: 118000, InsuranceCost: 1192.60},
	{PoolAmount: 119000, InsuranceCost: 1200.50},
	{PoolAmount: 120000, InsuranceCost: 1208.40},
	{PoolAmount: 121000, InsuranceCost: 1216.30},
	{PoolAmount: 122000, InsuranceCost: 1224.20},
	{PoolAmount: 123000, InsuranceCost: 1232.10},
	{PoolAmount: 124000, InsuranceCost: 1240.00},
	{PoolAmount: 125000, InsuranceCost: 1247.90},
	{PoolAmount: 126000, InsuranceCost: 1255.80},
	{PoolAmount: 127000, InsuranceCost: 1263.70},
	{PoolAmount: 128000, InsuranceCost: 1271.60},
	{PoolAmount: 129000, InsuranceCost: 1279.50},
	{PoolAmount: 130000, InsuranceCost: 1287.40},
	{PoolAmount: 131000, InsuranceCost: 1295.30},
	{PoolAmount: 132000, InsuranceCost: 1303.20},
	{PoolAmount: 133000, InsuranceCost: 1311.10},
	{PoolAmount: 134000, InsuranceCost: 1319.00},
	{PoolAmount: 135000, InsuranceCost: 1326.90},
	{PoolAmount: 136000, InsuranceCost: 1334.80},
	{PoolAmount: 137000, InsuranceCost: 1342.70},
	{PoolAmount: 138000, InsuranceCost: 1350.60},
	{PoolAmount: 139000, InsuranceCost: 1358.50},
	{PoolAmount: 140000, InsuranceCost: 1366.40},
	{PoolAmount: 141000, InsuranceCost: 1374.30},
	{PoolAmount: 142000, InsuranceCost: 1382.20},
	{PoolAmount: 143000, InsuranceCost: 1390.10},
	{PoolAmount: 144000, InsuranceCost: 1398.00},
	{PoolAmount: 145000, InsuranceCost: 1405.90},
	{PoolAmount: 146000, InsuranceCost: 1413.80},
	{PoolAmount: 147000, InsuranceCost: 1421.70},
	{PoolAmount: 148000, InsuranceCost: 1429.60},
	{PoolAmount: 149000, InsuranceCost: 1437.50},
	{PoolAmount: 150000, InsuranceCost: 1445.40},
	{PoolAmount: 151000, InsuranceCost: 1453.30},
	{PoolAmount: 152000, InsuranceCost: 1461.20},
	{PoolAmount: 153000, InsuranceCost: 1469.10},
	{PoolAmount: 154000, InsuranceCost: 1477.00},
	{PoolAmount: 155000, InsuranceCost: 1484.90},
	{PoolAmount: 156000, InsuranceCost: 1492.80},
	{PoolAmount: 157000, InsuranceCost: 1500.70},
	{PoolAmount: 158000, InsuranceCost: 1508.60},
	{PoolAmount: 159000, InsuranceCost: 1516.50},
	{PoolAmount: 160000, InsuranceCost: 1524.40},
	{PoolAmount: 161000, InsuranceCost: 1532.30},
	{PoolAmount: 162000, InsuranceCost: 1540.20},
	{PoolAmount: 163000, InsuranceCost: 1548.10},
	{PoolAmount: 164000, InsuranceCost: 1556.00},
	{PoolAmount: 165000, InsuranceCost: 1563.90},
	{PoolAmount: 166000, InsuranceCost: 1571.80},
	{PoolAmount: 167000, InsuranceCost: 1579.70},
	{PoolAmount: 168000, InsuranceCost: 1587.60},
	{PoolAmount: 169000, InsuranceCost: 1595.50},
	{PoolAmount: 170000, InsuranceCost: 1603.40},
	{PoolAmount: 171000, InsuranceCost: 1611.30},
	{PoolAmount: 172000, InsuranceCost: 1619.20},
	{PoolAmount: 173000, InsuranceCost: 1627.10},
	{PoolAmount: 174000, InsuranceCost: 1635.00},
	{PoolAmount: 175000, InsuranceCost: 1642.90},
	{PoolAmount: 176000, InsuranceCost: 1650.80},
	{PoolAmount: 177000, InsuranceCost: 1658.70},
	{PoolAmount: 178000, InsuranceCost: 1666.60},
	{PoolAmount: 179000, InsuranceCost: 1674.50},
	{PoolAmount: 180000, InsuranceCost: 1682.40},
	{PoolAmount: 181000, InsuranceCost: 1690.30},
	{PoolAmount: 182000, InsuranceCost: 1698.20},
	{PoolAmount: 183000, InsuranceCost: 1706.10},
	{PoolAmount: 184000, InsuranceCost: 1714.00},
	{PoolAmount: 185000, InsuranceCost: 1721.90},
	{PoolAmount: 186000, InsuranceCost: 1729.80},
	{PoolAmount: 187000, InsuranceCost: 1737.70},
	{PoolAmount: 188000, InsuranceCost: 1745.60},
	{PoolAmount: 189000, InsuranceCost: 1753.50},
	{PoolAmount: 190000, InsuranceCost: 1761.40},
	{PoolAmount: 191000, InsuranceCost: 1769.30},
	{PoolAmount: 192000, InsuranceCost: 1777.20},
	{PoolAmount: 193000, InsuranceCost: 1785.10},
	{PoolAmount: 194000, InsuranceCost: 1793.00},
	{PoolAmount: 195000, InsuranceCost: 1800.90},
	{PoolAmount: 196000, InsuranceCost: 1808.80},
	{PoolAmount: 197000, InsuranceCost: 1816.70},
	{PoolAmount: 198000, InsuranceCost: 1824.60},
	{PoolAmount: 199000, InsuranceCost: 1832.50},
	{PoolAmount: 200000, InsuranceCost: 1840.40},
	{PoolAmount: 201000, InsuranceCost: 1848.30},
	{PoolAmount: 202000, InsuranceCost: 1856.20},
	{PoolAmount: 203000, InsuranceCost: 1864.10},
	{PoolAmount: 204000, InsuranceCost: 1872.00},
	{PoolAmount: 205000, InsuranceCost: 1879.90},
	{PoolAmount: 206000, InsuranceCost: 1887.80},
	{PoolAmount: 207000, InsuranceCost: 1895.70},
	{PoolAmount: 208000, InsuranceCost: 1903.60},
	{PoolAmount: 209000, InsuranceCost: 1911.50},
	{PoolAmount: 210000, InsuranceCost: 1919.40},
	{PoolAmount: 211000, InsuranceCost: 1927.30},
	{PoolAmount: 212000, InsuranceCost: 1935.20},
	{PoolAmount: 213000, InsuranceCost: 1943.10},
	{PoolAmount: 214000, InsuranceCost: 1951.00},
	{PoolAmount: 215000, InsuranceCost: 1958.90},
	{PoolAmount: 216000, InsuranceCost: 1966.80},
	{PoolAmount: 217000, InsuranceCost: 1974.70},
	{PoolAmount: 218000, InsuranceCost: 1982.60},
	{PoolAmount: 219000, InsuranceCost: 1990.50},
	{PoolAmount: 220000, InsuranceCost: 1998.40},
	{PoolAmount: 221000, InsuranceCost: 2006.30},
	{PoolAmount: 222000, InsuranceCost: 2014.20},
	{PoolAmount: 223000, InsuranceCost: 2022.10},
	{PoolAmount: 224000, InsuranceCost: 2030.00},
	{PoolAmount: 225000, InsuranceCost: 2037.90},
	{PoolAmount: 226000, InsuranceCost: 2045.80},
	{PoolAmount: 227000, InsuranceCost: 2053.70},
	{PoolAmount: 228000, InsuranceCost: 2061.60},
	{PoolAmount: 229000, InsuranceCost: 2069.50},
	{PoolAmount: 230000, InsuranceCost: 2077.40},
	{PoolAmount: 231000, InsuranceCost: 2085.30},
	{PoolAmount: 232000, InsuranceCost: 2093.20},
	{PoolAmount: 233000, InsuranceCost: 2101.10},
	{PoolAmount: 234000, InsuranceCost: 2109.00},
	{PoolAmount: 235000, InsuranceCost: 2116.90},
	{PoolAmount: 236000, InsuranceCost: 2124.80},
	{PoolAmount: 237000, InsuranceCost: 2132.70},
	{PoolAmount: 238000, InsuranceCost: 2140.60},
	{PoolAmount: 239000, InsuranceCost: 2148.50},
	{PoolAmount: 240000, InsuranceCost: 2156.40},
	{PoolAmount: 241000, InsuranceCost: 2164.30},
	{PoolAmount: 242000, InsuranceCost: 2172.20},
	{PoolAmount: 243000, InsuranceCost: 2180.10},
	{PoolAmount: 244000, InsuranceCost: 2188.00},
	{PoolAmount: 245000, InsuranceCost: 2195.90},
	{PoolAmount: 246000, InsuranceCost: 2203.80},
	{PoolAmount: 247000, InsuranceCost: 2211.70},
	{PoolAmount: 248000, InsuranceCost: 2219.60},
	{PoolAmount: 249000, InsuranceCost: 2227.50},
	{PoolAmount: 250000, InsuranceCost: 2235.40},
	{PoolAmount: 251000, InsuranceCost: 2242.00},
	{PoolAmount: 252000, InsuranceCost: 2248.60},
	{PoolAmount: 253000, InsuranceCost: 2255.20},
	{PoolAmount: 254000, InsuranceCost: 2261.80},
	{PoolAmount: 255000, InsuranceCost: 2268.40},
	{PoolAmount: 256000, InsuranceCost: 2275.00},
	{PoolAmount: 257000, InsuranceCost: 2281.60},
	{PoolAmount: 258000, InsuranceCost: 2288.20},
	{PoolAmount: 259000, InsuranceCost: 2294.80},
	{PoolAmount: 260000, InsuranceCost: 2301.40},
	{PoolAmount: 261000, InsuranceCost: 2308.00},
	{PoolAmount: 262000, InsuranceCost: 2314.60},
	{PoolAmount: 263000, InsuranceCost: 2321.20},
	{PoolAmount: 264000, InsuranceCost: 2327.80},
	{PoolAmount: 265000, InsuranceCost: 2334.40},
	{PoolAmount: 266000, InsuranceCost: 2341.00},
	{PoolAmount: 267000, InsuranceCost: 2347.60},
	{PoolAmount: 268000, InsuranceCost: 2354.20},
	{PoolAmount: 269000, InsuranceCost: 2360.80},
	{PoolAmount: 270000, InsuranceCost: 2367.40},
	{PoolAmount: 271000, InsuranceCost: 2374.00},
	{PoolAmount: 272000, InsuranceCost: 2380.60},
	{PoolAmount: 273000, InsuranceCost: 2387.20},
	{PoolAmount: 274000, InsuranceCost: 2393.80},
	{PoolAmount: 275000, InsuranceCost: 2400.40},
	{PoolAmount: 276000, InsuranceCost: 2407.00},
	{PoolAmount: 277000, InsuranceCost: 2413.60},
	{PoolAmount: 278000, InsuranceCost: 2420.20},
	{PoolAmount: 279000, InsuranceCost: 2426.80},
	{PoolAmount: 280000, InsuranceCost: 2433.40},
	{PoolAmount: 281000, InsuranceCost: 2440.00},
	{PoolAmount: 282000, InsuranceCost: 2446.60},
	{PoolAmount: 283000, InsuranceCost: 2453.20},
	{PoolAmount: 284000, InsuranceCost: 2459.80},
	{PoolAmount: 285000, InsuranceCost: 2466.40},
	{PoolAmount: 286000, InsuranceCost: 2473.00},
	{PoolAmount: 287000, InsuranceCost: 2479.60},
	{PoolAmount: 288000, InsuranceCost: 2486.20},
	{PoolAmount: 289000, InsuranceCost: 2492.80},
	{PoolAmount: 290000, InsuranceCost: 2499.40},
	{PoolAmount: 291000, InsuranceCost: 2506.00},
	{PoolAmount: 292000, InsuranceCost: 2512.60},
	{PoolAmount: 293000, InsuranceCost: 2519.20},
	{PoolAmount: 294000, InsuranceCost: 2525.80},
	{PoolAmount: 295000, InsuranceCost: 2532.40},
	{PoolAmount: 296000, InsuranceCost: 2539.00},
	{PoolAmount: 297000, InsuranceCost: 2545.60},
	{PoolAmount: 298000, InsuranceCost: 2552.20},
	{PoolAmount: 299000, InsuranceCost: 2558.80},
	{PoolAmount: 300000, InsuranceCost: 2565.40},
	{PoolAmount: 301000, InsuranceCost: 2572.00},
	{PoolAmount: 302000, InsuranceCost: 2578.60},
	{PoolAmount: 303000, InsuranceCost: 2585.20},
	{PoolAmount: 304000, InsuranceCost: 2591.80},
	{PoolAmount: 305000, InsuranceCost: 2598.40},
	{PoolAmount: 306000, InsuranceCost: 2605.00},
	{PoolAmount: 307000, InsuranceCost: 2611.60},
	{PoolAmount: 308000, InsuranceCost: 2618.20},
	{PoolAmount: 309000, InsuranceCost: 2624.80},
	{PoolAmount: 310000, InsuranceCost: 2631.40},
	{PoolAmount: 311000, InsuranceCost: 2638.00},
	{PoolAmount: 312000, InsuranceCost: 2644.60},
	{PoolAmount: 313000, InsuranceCost: 2651.20},
	{PoolAmount: 314000, InsuranceCost: 2657.80},
	{PoolAmount: 315000, InsuranceCost: 2664.40},
	{PoolAmount: 316000, InsuranceCost: 2671.00},
	{PoolAmount: 317000, InsuranceCost: 2677.60},
	{PoolAmount: 318000, InsuranceCost: 2684.20},
	{PoolAmount: 319000, InsuranceCost: 2690.80},
	{PoolAmount: 320000, InsuranceCost: 2697.40},
	{PoolAmount: 321000, InsuranceCost: 2704.00},
	{PoolAmount: 322000, InsuranceCost: 2710.60},
	{PoolAmount: 323000, InsuranceCost: 2717.20},
	{PoolAmount: 324000, InsuranceCost: 2723.80},
	{PoolAmount: 325000, InsuranceCost: 2730.40},
	{PoolAmount: 326000, InsuranceCost: 2737.00},
	{PoolAmount: 327000, InsuranceCost: 2743.60},
	{PoolAmount: 328000, InsuranceCost: 2750.20},
	{PoolAmount: 329000, InsuranceCost: 2756.80},
	{PoolAmount: 330000, InsuranceCost: 2763.40},
	{PoolAmount: 331000, InsuranceCost: 2770.00},
	{PoolAmount: 332000, InsuranceCost: 2776.60},
	{PoolAmount: 333000, InsuranceCost: 2783.20},
	{PoolAmount: 334000, InsuranceCost: 2789.80},
	{PoolAmount: 335000, InsuranceCost: 2796.40},
	{PoolAmount: 336000, InsuranceCost: 2803.00},
	{PoolAmount: 337000, InsuranceCost: 2809.60},
	{PoolAmount: 338000, InsuranceCost: 2816.20},
	{PoolAmount: 339000, InsuranceCost: 2822.80},
	{PoolAmount: 340000, InsuranceCost: 2829.40},
	{PoolAmount: 341000, InsuranceCost: 2836.00},
	{PoolAmount: 342000, InsuranceCost: 2842.60},
	{PoolAmount: 343000, InsuranceCost: 2849.20},
	{PoolAmount: 344000, InsuranceCost: 2855.80},
	{PoolAmount: 345000, InsuranceCost: 2862.40},
	{PoolAmount: 346000, InsuranceCost: 2869.00},
	{PoolAmount: 347000, InsuranceCost: 2875.60},
	{PoolAmount: 348000, InsuranceCost: 2882.20},
	{PoolAmount: 349000, InsuranceCost: 2888.80},
	{PoolAmount: 350000, InsuranceCost: 2895.40},
	{PoolAmount: 351000, InsuranceCost: 2902.00},
	{PoolAmount: 352000, InsuranceCost: 2908.60},
	{PoolAmount: 353000, InsuranceCost: 2915.20},
	{PoolAmount: 354000, InsuranceCost: 2921.80},
	{PoolAmount: 355000, InsuranceCost: 2928.40},
	{PoolAmount: 356000, InsuranceCost: 2935.00},
	{PoolAmount: 357000, InsuranceCost: 2941.60},
	{PoolAmount: 358000, InsuranceCost: 2948.20},
	{PoolAmount: 359000, InsuranceCost: 2954.80},
	{PoolAmount: 360000, InsuranceCost: 2961.40},
	{PoolAmount: 361000, InsuranceCost: 2968.00},
	{PoolAmount: 362000, InsuranceCost: 2974.60},
	{PoolAmount: 363000, InsuranceCost: 2981.20},
	{PoolAmount: 364000, InsuranceCost: 2987.80},
	{PoolAmount: 365000, InsuranceCost: 2994.40},
	{PoolAmount: 366000, InsuranceCost: 3001.00},
	{PoolAmount: 367000, InsuranceCost: 3007.60},
	{PoolAmount: 368000, InsuranceCost: 3014.20},
	{PoolAmount: 369000, InsuranceCost: 3020.80},
	{PoolAmount: 370000, InsuranceCost: 3027.40},
	{PoolAmount: 371000, InsuranceCost: 3034.00},
	{PoolAmount: 372000, InsuranceCost: 3040.60},
	{PoolAmount: 373000, InsuranceCost: 3047.20},
	{PoolAmount: 374000, InsuranceCost: 3053.80},
	{PoolAmount: 375000, InsuranceCost: 3060.40},
	{PoolAmount: 376000, InsuranceCost: 3067.00},
	{PoolAmount: 377000, InsuranceCost: 3073.60},
	{PoolAmount: 378000, InsuranceCost: 3080.20},
	{PoolAmount: 379000, InsuranceCost: 3086.80},
	{PoolAmount: 380000, InsuranceCost: 3093.40},
	{PoolAmount: 381000, InsuranceCost: 3100.00},
	{PoolAmount: 382000, InsuranceCost: 3106.60},
	{PoolAmount: 383000, InsuranceCost: 3113.20},
	{PoolAmount: 384000, InsuranceCost: 3119.80},
	{PoolAmount: 385000, InsuranceCost: 3126.40},
	{PoolAmount: 386000, InsuranceCost: 3133.00},
	{PoolAmount: 387000, InsuranceCost: 3139.60},
	{PoolAmount: 388000, InsuranceCost: 3146.20},
	{PoolAmount: 389000, InsuranceCost: 3152.80},
	{PoolAmount: 390000, InsuranceCost: 3159.40},
	{PoolAmount: 391000, InsuranceCost: 3166.00},
	{PoolAmount: 392000, InsuranceCost: 3172.60},
	{PoolAmount: 393000, InsuranceCost: 3179.20},
	{PoolAmount: 394000, InsuranceCost: 3185.80},
	{PoolAmount: 395000, InsuranceCost: 3192.40},
	{PoolAmount: 396000, InsuranceCost: 3199.00},
	{PoolAmount: 397000, InsuranceCost: 3205.60},
	{PoolAmount: 398000, InsuranceCost: 3212.20},
	{PoolAmount: 399000, InsuranceCost: 3218.80},
	{PoolAmount: 400000, InsuranceCost: 3225.40},
	{PoolAmount: 401000, InsuranceCost: 3232.00},
	{PoolAmount: 402000, InsuranceCost: 3238.60},
	{PoolAmount: 403000, InsuranceCost: 3245.20},
	{PoolAmount: 404000, InsuranceCost: 3251.80},
	{PoolAmount: 405000, InsuranceCost: 3258.40},
	{PoolAmount: 406000, InsuranceCost: 3265.00},
	{PoolAmount: 407000, InsuranceCost: 3271.60},
	{PoolAmount: 408000, InsuranceCost: 3278.20},
	{PoolAmount: 409000, InsuranceCost: 3284.80},
	{PoolAmount: 410000, InsuranceCost: 3291.40},
	{PoolAmount: 411000, InsuranceCost: 3298.00},
	{PoolAmount: 412000, InsuranceCost: 3304.60},
	{PoolAmount: 413000, InsuranceCost: 3311.20},
	{PoolAmount: 414000, InsuranceCost: 3317.80},
	{PoolAmount: 415000, InsuranceCost: 3324.40},
	{PoolAmount: 416000, InsuranceCost: 3331.00},
	{PoolAmount: 417000, InsuranceCost: 3337.60},
	{PoolAmount: 418000, InsuranceCost: 3344.20},
	{PoolAmount: 419000, InsuranceCost: 3350.80},
	{PoolAmount: 420000, InsuranceCost: 3357.40},
	{PoolAmount: 421000, InsuranceCost: 3364.00},
	{PoolAmount: 422000, InsuranceCost: 3370.60},
	{PoolAmount: 423000, InsuranceCost: 3377.20},
	{PoolAmount: 424000, InsuranceCost: 3383.80},
	{PoolAmount: 425000, InsuranceCost: 3390.40},
	{PoolAmount: 426000, InsuranceCost: 3397.00},
	{PoolAmount: 427000, InsuranceCost: 3403.60},
	{PoolAmount: 428000, InsuranceCost: 3410.20},
	{PoolAmount: 429000, InsuranceCost: 3416.80},
	{PoolAmount: 430000, InsuranceCost: 3423.40},
	{PoolAmount: 431000, InsuranceCost: 3430.00},
	{PoolAmount: 432000, InsuranceCost: 3436.60},
	{PoolAmount: 433000, InsuranceCost: 3443.20},
	{PoolAmount: 434000, InsuranceCost: 3449.80},
	{PoolAmount: 435000, InsuranceCost: 3456.40},
	{PoolAmount: 436000, InsuranceCost: 3463.00},
	{PoolAmount: 437000, InsuranceCost: 3469.60},
	{PoolAmount: 438000, InsuranceCost: 3476.20},
	{PoolAmount: 439000, InsuranceCost: 3482.80},
	{PoolAmount: 440000, InsuranceCost: 3489.40},
	{PoolAmount: 441000, InsuranceCost: 3496.00},
	{PoolAmount: 442000, InsuranceCost: 3502.60},
	{PoolAmount: 443000, InsuranceCost: 3509.20},
	{PoolAmount: 444000, InsuranceCost: 3515.80},
	{PoolAmount: 445000, InsuranceCost: 3522.40},
	{PoolAmount: 446000, InsuranceCost: 3529.00},
	{PoolAmount: 447000, InsuranceCost: 3535.60},
	{PoolAmount: 448000, InsuranceCost: 3542.20},
	{PoolAmount: 449000, InsuranceCost: 3548.80},
	{PoolAmount: 450000, InsuranceCost: 3555.40},
	{PoolAmount: 451000, InsuranceCost: 3562.00},
	{PoolAmount: 452000, InsuranceCost: 3568.60},
	{PoolAmount: 453000, InsuranceCost: 3575.20},
	{PoolAmount: 454000, InsuranceCost: 3581.80},
	{PoolAmount: 455000, InsuranceCost: 3588.40},
	{PoolAmount: 456000, InsuranceCost: 3595.00},
	{PoolAmount: 457000, InsuranceCost: 3601.60},
	{PoolAmount: 458000, InsuranceCost: 3608.20},
	{PoolAmount: 459000, InsuranceCost: 3614.80},
	{PoolAmount: 460000, InsuranceCost: 3621.40},
	{PoolAmount: 461000, InsuranceCost: 3628.00},
	{PoolAmount: 462000, InsuranceCost: 3634.60},
	{PoolAmount: 463000, InsuranceCost: 3641.20},
	{PoolAmount: 464000, InsuranceCost: 3647.80},
	{PoolAmount: 465000, InsuranceCost: 3654.40},
	{PoolAmount: 466000, InsuranceCost: 3661.00},
	{PoolAmount: 467000, InsuranceCost: 3667.60},
	{PoolAmount: 468000, InsuranceCost: 3674.20},
	{PoolAmount: 469000, InsuranceCost: 3680.80},
	{PoolAmount: 470000, InsuranceCost: 3687.40},
	{PoolAmount: 471000, InsuranceCost: 3694.00},
	{PoolAmount: 472000, InsuranceCost: 3700.60},
}
